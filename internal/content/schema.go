package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

// Request-shape contracts, one JSON Schema per collection. Compiled once at
// startup; a body that fails its schema never reaches the store.
var schemaJSON = map[string]string{
	CollectionProject: `{
		"type": "object",
		"required": ["title", "slug", "summary"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"slug": {"type": "string", "minLength": 1},
			"summary": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}},
			"tech": {"type": "array", "items": {"type": "string"}},
			"cover": {"type": "string"},
			"logo": {"type": "string"},
			"demo_url": {"type": "string"},
			"repo_url": {"type": "string"},
			"tldr": {"type": "string"},
			"role": {"type": "string"},
			"timeline": {"type": "string"},
			"wireframes": {"type": "array", "items": {"type": "string"}},
			"screenshots": {"type": "array", "items": {"type": "string"}},
			"video": {"type": "string"},
			"mermaid": {"type": "string"},
			"learnings": {"type": "array", "items": {"type": "string"}},
			"kpis": {"type": "array", "items": {"type": "string"}}
		}
	}`,
	CollectionTech: `{
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"category": {"type": "string"},
			"level": {"type": "string"},
			"icon": {"type": "string"}
		}
	}`,
	CollectionPost: `{
		"type": "object",
		"required": ["title", "slug", "excerpt", "content"],
		"properties": {
			"title": {"type": "string", "minLength": 1},
			"slug": {"type": "string", "minLength": 1},
			"excerpt": {"type": "string"},
			"content": {"type": "string"},
			"tags": {"type": "array", "items": {"type": "string"}},
			"read_time": {"type": "integer", "minimum": 0},
			"cover": {"type": "string"}
		}
	}`,
	CollectionExperience: `{
		"type": "object",
		"required": ["org", "role", "start", "end", "summary"],
		"properties": {
			"org": {"type": "string"},
			"role": {"type": "string"},
			"start": {"type": "string"},
			"end": {"type": "string"},
			"summary": {"type": "string"}
		}
	}`,
	CollectionEducation: `{
		"type": "object",
		"required": ["school", "degree", "start", "end", "summary"],
		"properties": {
			"school": {"type": "string"},
			"degree": {"type": "string"},
			"start": {"type": "string"},
			"end": {"type": "string"},
			"summary": {"type": "string"}
		}
	}`,
}

// Validator holds the compiled per-collection schemas.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	schemas := make(map[string]*jsonschema.Schema, len(schemaJSON))
	for name, src := range schemaJSON {
		rs := &jsonschema.Schema{}
		if err := json.Unmarshal([]byte(src), rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}

		schemas[name] = rs
	}

	return &Validator{schemas: schemas}, nil
}

// Validate checks a raw request body against the collection's schema.
func (v *Validator) Validate(ctx context.Context, collection string, raw []byte) error {
	rs, ok := v.schemas[collection]
	if !ok {
		return fmt.Errorf("no schema for collection %q", collection)
	}

	keyErrs, err := rs.ValidateBytes(ctx, raw)
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if len(keyErrs) > 0 {
		msgs := make([]string, 0, len(keyErrs))
		for _, ke := range keyErrs {
			msgs = append(msgs, ke.Error())
		}

		return fmt.Errorf("invalid %s: %s", collection, strings.Join(msgs, "; "))
	}

	return nil
}

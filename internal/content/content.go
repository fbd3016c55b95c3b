// Package content defines the five portfolio document types, validates
// inbound request bodies against per-collection schemas, and shapes stored
// documents for API responses.
package content

import (
	"encoding/json"
	"fmt"

	"github.com/garnizeh/portfolio/pkg/store"
)

// Collection names in the document store, one per content type.
const (
	CollectionProject    = "project"
	CollectionTech       = "techitem"
	CollectionPost       = "blogpost"
	CollectionExperience = "experience"
	CollectionEducation  = "education"
)

type Project struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags"`
	Tech        []string `json:"tech"`
	Cover       string   `json:"cover,omitempty"`
	Logo        string   `json:"logo,omitempty"`
	DemoURL     string   `json:"demo_url,omitempty"`
	RepoURL     string   `json:"repo_url,omitempty"`
	TLDR        string   `json:"tldr,omitempty"`
	Role        string   `json:"role,omitempty"`
	Timeline    string   `json:"timeline,omitempty"`
	Wireframes  []string `json:"wireframes"`
	Screenshots []string `json:"screenshots"`
	Video       string   `json:"video,omitempty"`
	Mermaid     string   `json:"mermaid,omitempty"`
	Learnings   []string `json:"learnings"`
	KPIs        []string `json:"kpis"`
}

type TechItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

type BlogPost struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
	ReadTime int      `json:"read_time"`
	Cover    string   `json:"cover,omitempty"`
}

type Experience struct {
	Org     string `json:"org"`
	Role    string `json:"role"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Summary string `json:"summary"`
}

type Education struct {
	School  string `json:"school"`
	Degree  string `json:"degree"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Summary string `json:"summary"`
}

// Decode parses a validated request body into the collection's typed shape,
// applies its defaults, and returns the document to store. Callers run
// schema validation first; Decode only guards against the raw JSON itself.
func Decode(collection string, raw []byte) (store.Document, error) {
	switch collection {
	case CollectionProject:
		p := Project{}
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		p.Tags = orEmpty(p.Tags)
		p.Tech = orEmpty(p.Tech)
		p.Wireframes = orEmpty(p.Wireframes)
		p.Screenshots = orEmpty(p.Screenshots)
		p.Learnings = orEmpty(p.Learnings)
		p.KPIs = orEmpty(p.KPIs)
		return toDocument(p)

	case CollectionTech:
		item := TechItem{Category: "general"}
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("decode tech item: %w", err)
		}
		if item.Category == "" {
			item.Category = "general"
		}
		return toDocument(item)

	case CollectionPost:
		post := BlogPost{ReadTime: 4}
		if err := json.Unmarshal(raw, &post); err != nil {
			return nil, fmt.Errorf("decode blog post: %w", err)
		}
		post.Tags = orEmpty(post.Tags)
		return toDocument(post)

	case CollectionExperience:
		var e Experience
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode experience: %w", err)
		}
		return toDocument(e)

	case CollectionEducation:
		var e Education
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("decode education: %w", err)
		}
		return toDocument(e)
	}

	return nil, fmt.Errorf("unknown collection %q", collection)
}

// Optional string fields each shape drops from the wire when empty.
var optionalFields = map[string][]string{
	CollectionProject: {"cover", "logo", "demo_url", "repo_url", "tldr", "role", "timeline", "video", "mermaid"},
	CollectionTech:    {"level", "icon"},
	CollectionPost:    {"cover"},
}

// Replacement decodes raw like Decode but returns the collection's complete
// field set, with omitted optional fields present as empty strings. Update
// handlers use it so storing the result overwrites the whole document:
// a field left out of the request clears the stored value instead of
// surviving the merge.
func Replacement(collection string, raw []byte) (store.Document, error) {
	doc, err := Decode(collection, raw)
	if err != nil {
		return nil, err
	}
	for _, key := range optionalFields[collection] {
		if _, ok := doc[key]; !ok {
			doc[key] = ""
		}
	}
	return doc, nil
}

func toDocument(v any) (store.Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	var doc store.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	return doc, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

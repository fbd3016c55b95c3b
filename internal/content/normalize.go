package content

import (
	"fmt"
	"sort"
	"time"

	"github.com/garnizeh/portfolio/pkg/store"
)

// Normalize shapes a stored document for API output: the internal "_id"
// field is dropped and its value exposed as the public string "id". Every
// other field passes through unchanged.
func Normalize(doc store.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == "_id" {
			continue
		}
		out[k] = v
	}
	out["id"] = fmt.Sprintf("%v", doc["_id"])

	return out
}

// NormalizeAll normalizes a result set, always returning a non-nil slice so
// empty listings encode as [] rather than null.
func NormalizeAll(docs []store.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Normalize(doc))
	}

	return out
}

// LatestPosts orders documents most-recent-first by their created_at field
// and keeps the first n. A missing or unparsable created_at counts as now,
// which floats those documents to the front. This is presentation policy
// for the blog listing, not a store capability.
func LatestPosts(docs []store.Document, n int) []store.Document {
	now := time.Now().UTC()

	createdAt := func(doc store.Document) time.Time {
		if s, ok := doc["created_at"].(string); ok {
			if t, err := time.Parse(time.RFC3339, s); err == nil {
				return t
			}
		}
		return now
	}

	sorted := make([]store.Document, len(docs))
	copy(sorted, docs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	return sorted
}

package content_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/garnizeh/portfolio/internal/content"
	"github.com/garnizeh/portfolio/pkg/store"
)

func TestNormalize(t *testing.T) {
	doc := store.Document{
		"_id":   "abc-123",
		"title": "P",
		"tags":  []any{"go"},
	}

	out := content.Normalize(doc)

	if out["id"] != "abc-123" {
		t.Fatalf("unexpected id: %#v", out["id"])
	}
	if _, ok := out["_id"]; ok {
		t.Fatal("internal _id leaked into output")
	}
	if out["title"] != "P" {
		t.Fatalf("field lost: %#v", out)
	}

	// source document untouched
	if doc["_id"] != "abc-123" {
		t.Fatal("normalize mutated the source document")
	}
}

func TestNormalizeAllEmpty(t *testing.T) {
	out := content.NormalizeAll(nil)
	if out == nil {
		t.Fatal("expected non-nil slice for empty input")
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %d", len(out))
	}
}

func TestLatestPosts(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	var docs []store.Document
	for i := 0; i < 5; i++ {
		docs = append(docs, store.Document{
			"_id":        fmt.Sprintf("id-%d", i),
			"title":      fmt.Sprintf("post %d", i),
			"created_at": base.Add(time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
	}

	latest := content.LatestPosts(docs, 3)

	if len(latest) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(latest))
	}
	for i, wantTitle := range []string{"post 4", "post 3", "post 2"} {
		if latest[i]["title"] != wantTitle {
			t.Fatalf("position %d: want %q, got %#v", i, wantTitle, latest[i]["title"])
		}
	}

	// input order preserved
	if docs[0]["title"] != "post 0" {
		t.Fatal("LatestPosts mutated its input")
	}
}

func TestLatestPostsMissingCreatedAt(t *testing.T) {
	docs := []store.Document{
		{"_id": "old", "created_at": "2020-01-01T00:00:00Z"},
		{"_id": "undated"},
		{"_id": "older", "created_at": "2019-01-01T00:00:00Z"},
	}

	latest := content.LatestPosts(docs, 3)

	// missing created_at counts as now, so the undated post sorts first
	if latest[0]["_id"] != "undated" {
		t.Fatalf("expected undated post first, got %#v", latest[0]["_id"])
	}
	if latest[1]["_id"] != "old" || latest[2]["_id"] != "older" {
		t.Fatalf("unexpected order: %#v", latest)
	}
}

func TestLatestPostsFewerThanLimit(t *testing.T) {
	docs := []store.Document{{"_id": "only"}}

	latest := content.LatestPosts(docs, 3)
	if len(latest) != 1 {
		t.Fatalf("expected 1 post, got %d", len(latest))
	}
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/garnizeh/portfolio/internal/db"
	"github.com/garnizeh/portfolio/internal/store/sqlite"
	"github.com/garnizeh/portfolio/pkg/store"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	ctx := context.Background()
	d, err := db.New(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := db.Migrate(ctx, d); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return sqlite.New(d, nil)
}

func TestInsertAndFind(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	id, err := s.Insert(ctx, "project", store.Document{
		"title":   "Portfolio",
		"slug":    "portfolio",
		"summary": "my site",
		"tags":    []string{"go"},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id == "" {
		t.Fatal("empty id")
	}

	docs, err := s.Find(ctx, "project", nil)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}

	doc := docs[0]
	if doc["_id"] != id {
		t.Fatalf("unexpected _id: %v", doc["_id"])
	}
	if doc["title"] != "Portfolio" {
		t.Fatalf("unexpected title: %v", doc["title"])
	}
	if !reflect.DeepEqual(doc["tags"], []any{"go"}) {
		t.Fatalf("unexpected tags: %#v", doc["tags"])
	}
	if created, ok := doc["created_at"].(string); !ok || created == "" {
		t.Fatalf("missing created_at: %#v", doc["created_at"])
	}
}

func TestFindBySlug(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Insert(ctx, "project", store.Document{"title": "One", "slug": "one"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := s.Insert(ctx, "project", store.Document{"title": "Two", "slug": "two"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	docs, err := s.Find(ctx, "project", store.Filter{"slug": "two"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 || docs[0]["title"] != "Two" {
		t.Fatalf("unexpected result: %#v", docs)
	}

	none, err := s.Find(ctx, "project", store.Filter{"slug": "missing"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no documents, got %d", len(none))
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Insert(ctx, "project", store.Document{"slug": "same"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := s.Insert(ctx, "blogpost", store.Document{"slug": "same"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	docs, err := s.Find(ctx, "blogpost", store.Filter{"slug": "same"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 blogpost, got %d", len(docs))
	}

	cols, err := s.Collections(ctx)
	if err != nil {
		t.Fatalf("collections: %v", err)
	}
	want := []string{"blogpost", "project"}
	if !reflect.DeepEqual(cols, want) {
		t.Fatalf("unexpected collections: %v", cols)
	}
}

func TestFindOneAndUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Insert(ctx, "project", store.Document{"title": "Old", "slug": "p", "tldr": "keep-or-replace"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	found, err := s.FindOneAndUpdate(ctx, "project", store.Filter{"slug": "p"}, store.Document{"title": "New", "summary": "added"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !found {
		t.Fatal("expected a match")
	}

	docs, err := s.Find(ctx, "project", store.Filter{"slug": "p"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	doc := docs[0]
	if doc["title"] != "New" || doc["summary"] != "added" {
		t.Fatalf("update not applied: %#v", doc)
	}
	if doc["tldr"] != "keep-or-replace" {
		t.Fatalf("untouched field lost: %#v", doc)
	}
	if updated, ok := doc["updated_at"].(string); !ok || updated == "" {
		t.Fatalf("missing updated_at: %#v", doc["updated_at"])
	}

	found, err = s.FindOneAndUpdate(ctx, "project", store.Filter{"slug": "missing"}, store.Document{"title": "X"})
	if err != nil {
		t.Fatalf("update miss: %v", err)
	}
	if found {
		t.Fatal("expected no match")
	}
}

func TestDeleteOne(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if _, err := s.Insert(ctx, "project", store.Document{"slug": "gone"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	n, err := s.DeleteOne(ctx, "project", store.Filter{"slug": "gone"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}

	n, err = s.DeleteOne(ctx, "project", store.Filter{"slug": "gone"})
	if err != nil {
		t.Fatalf("delete miss: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 deleted, got %d", n)
	}
}

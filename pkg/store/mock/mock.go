package mock

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/garnizeh/portfolio/pkg/store"
)

// Store is an in-memory store.Store for handler tests. Error fields, when
// set, are returned by the corresponding operation.
type Store struct {
	mu   sync.Mutex
	seq  int
	docs map[string][]store.Document

	InsertErr      error
	FindErr        error
	UpdateErr      error
	DeleteErr      error
	CollectionsErr error
}

var _ store.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{docs: make(map[string][]store.Document)}
}

// Seed places a document directly into a collection, bypassing the insert
// path, so tests can control every field including _id and created_at.
func (s *Store) Seed(collection string, doc store.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[collection] = append(s.docs[collection], clone(doc))
}

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	if s.InsertErr != nil {
		return "", s.InsertErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("mock-%d", s.seq)
	d := clone(doc)
	d["_id"] = id
	if _, ok := d["created_at"]; !ok {
		d["created_at"] = time.Now().UTC().Format(time.RFC3339)
	}
	s.docs[collection] = append(s.docs[collection], d)

	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Filter) ([]store.Document, error) {
	if s.FindErr != nil {
		return nil, s.FindErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []store.Document
	for _, d := range s.docs[collection] {
		if matches(d, filter) {
			out = append(out, clone(d))
		}
	}

	return out, nil
}

func (s *Store) FindOneAndUpdate(ctx context.Context, collection string, filter store.Filter, fields store.Document) (bool, error) {
	if s.UpdateErr != nil {
		return false, s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs[collection] {
		if matches(d, filter) {
			for k, v := range fields {
				if k == "_id" {
					continue
				}
				d[k] = v
			}
			d["updated_at"] = time.Now().UTC().Format(time.RFC3339)
			return true, nil
		}
	}

	return false, nil
}

func (s *Store) DeleteOne(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs[collection] {
		if matches(d, filter) {
			s.docs[collection] = append(s.docs[collection][:i], s.docs[collection][i+1:]...)
			return 1, nil
		}
	}

	return 0, nil
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	if s.CollectionsErr != nil {
		return nil, s.CollectionsErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for name, docs := range s.docs {
		if len(docs) > 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out, nil
}

func matches(d store.Document, filter store.Filter) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(d[k], want) {
			return false
		}
	}
	return true
}

func clone(d store.Document) store.Document {
	out := make(store.Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

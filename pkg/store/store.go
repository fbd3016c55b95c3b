package store

import "context"

// Document is a raw stored record. Documents read back from the store carry
// the internal identifier under the "_id" key; responses must rename it to
// the public "id" field before leaving the process.
type Document map[string]any

// Filter matches documents whose top-level fields equal every listed value.
// A nil or empty filter matches everything in the collection.
type Filter map[string]any

// Store is the generic document store contract. Concrete implementations
// live under internal/; consumers should depend on this interface.
type Store interface {
	// Insert stores a new document in the named collection and returns the
	// store-assigned identifier. A created_at timestamp is stamped when the
	// document doesn't already carry one.
	Insert(ctx context.Context, collection string, doc Document) (string, error)

	// Find returns every document in the collection matching the filter,
	// oldest first.
	Find(ctx context.Context, collection string, filter Filter) ([]Document, error)

	// FindOneAndUpdate merges fields into the first matching document and
	// stamps updated_at. It reports whether a document matched.
	FindOneAndUpdate(ctx context.Context, collection string, filter Filter, fields Document) (bool, error)

	// DeleteOne removes at most one matching document and returns the number
	// deleted (0 or 1). A miss is not an error.
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)

	// Collections lists the distinct collection names currently present.
	Collections(ctx context.Context) ([]string, error)
}

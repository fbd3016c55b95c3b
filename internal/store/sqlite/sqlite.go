package sqlite

import (
	"io"
	"log/slog"

	"github.com/garnizeh/portfolio/internal/db"
	"github.com/garnizeh/portfolio/pkg/store"
)

// Store implements the document store over a single documents table, with
// document bodies kept as JSON text and filters pushed down via
// json_extract.
type Store struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure Store implements the public contract.
var _ store.Store = (*Store)(nil)

func New(conn *db.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Store{conn: conn, logger: logger}
}

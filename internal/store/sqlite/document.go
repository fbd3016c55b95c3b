package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/garnizeh/portfolio/pkg/store"
)

func (s *Store) Insert(ctx context.Context, collection string, doc store.Document) (string, error) {
	if collection == "" {
		return "", fmt.Errorf("collection is required")
	}

	now := time.Now().UTC()

	body := make(store.Document, len(doc)+1)
	for k, v := range doc {
		body[k] = v
	}
	delete(body, "_id")
	if _, ok := body["created_at"]; !ok {
		body["created_at"] = now.Format(time.RFC3339)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}

	id := uuid.NewString()
	if _, err := s.conn.Exec(ctx, `INSERT INTO documents (id, collection, body, created) VALUES (?, ?, ?, ?)`, id, collection, string(b), now.UnixMilli()); err != nil {
		return "", err
	}

	s.logger.Debug("document inserted", slog.String("collection", collection), slog.String("id", id))

	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, filter store.Filter) ([]store.Document, error) {
	query, args := filterQuery(`SELECT id, body FROM documents`, collection, filter)
	query += ` ORDER BY created ASC, id ASC`

	rows, err := s.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Document
	for rows.Next() {
		var id, body string
		if err := rows.Scan(&id, &body); err != nil {
			return nil, err
		}

		doc, err := decodeBody(id, body)
		if err != nil {
			return nil, err
		}

		out = append(out, doc)
	}

	return out, rows.Err()
}

func (s *Store) FindOneAndUpdate(ctx context.Context, collection string, filter store.Filter, fields store.Document) (bool, error) {
	query, args := filterQuery(`SELECT id, body FROM documents`, collection, filter)
	query += ` ORDER BY created ASC, id ASC LIMIT 1`

	var id, body string
	row := s.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&id, &body); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}

		return false, err
	}

	doc, err := decodeBody(id, body)
	if err != nil {
		return false, err
	}
	delete(doc, "_id")

	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	b, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("marshal document: %w", err)
	}

	if _, err := s.conn.Exec(ctx, `UPDATE documents SET body = ? WHERE id = ?`, string(b), id); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Store) DeleteOne(ctx context.Context, collection string, filter store.Filter) (int64, error) {
	sub, args := filterQuery(`SELECT id FROM documents`, collection, filter)
	sub += ` ORDER BY created ASC, id ASC LIMIT 1`

	res, err := s.conn.Exec(ctx, `DELETE FROM documents WHERE id IN (`+sub+`)`, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (s *Store) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryRows(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}

		out = append(out, name)
	}

	return out, rows.Err()
}

// filterQuery appends the collection constraint and an equality predicate
// per filter field, matching on top-level JSON keys in the body.
func filterQuery(base, collection string, filter store.Filter) (string, []any) {
	query := base + ` WHERE collection = ?`
	args := []any{collection}

	for k, v := range filter {
		query += ` AND json_extract(body, ?) = ?`
		args = append(args, "$."+k, v)
	}

	return query, args
}

func decodeBody(id, body string) (store.Document, error) {
	var doc store.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	doc["_id"] = id

	return doc, nil
}

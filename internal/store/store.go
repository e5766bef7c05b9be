// Package store persists ingested topic-model exports in a local SQLite
// database, so large exports can be browsed without re-parsing JSON.
package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/bunkatopics/territory/internal/topics"
)

const schema = `
CREATE TABLE IF NOT EXISTS topics (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	size    INTEGER NOT NULL DEFAULT 0,
	percent REAL NOT NULL DEFAULT 0,
	x       REAL NOT NULL DEFAULT 0,
	y       REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS topic_terms (
	topic_id TEXT NOT NULL REFERENCES topics(id) ON DELETE CASCADE,
	term     TEXT NOT NULL,
	rank     INTEGER NOT NULL,
	PRIMARY KEY (topic_id, rank)
);

CREATE TABLE IF NOT EXISTS documents (
	id       TEXT PRIMARY KEY,
	content  TEXT NOT NULL,
	topic_id TEXT REFERENCES topics(id) ON DELETE CASCADE,
	rank     INTEGER NOT NULL DEFAULT 0,
	x        REAL NOT NULL DEFAULT 0,
	y        REAL NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_documents_topic ON documents(topic_id, rank);
`

// Store wraps the SQLite database holding one ingested export.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path with sensible SQLite
// defaults and ensures the schema exists.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1) // sqlite

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// withTx runs fn in a transaction.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Ingest replaces the stored export with ex in a single transaction.
func (s *Store) Ingest(ex *topics.Export) error {
	return s.withTx(func(tx *sql.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM documents",
			"DELETE FROM topic_terms",
			"DELETE FROM topics",
		} {
			if _, err := tx.Exec(stmt); err != nil {
				return err
			}
		}

		for _, t := range ex.Topics {
			if _, err := tx.Exec(
				"INSERT INTO topics (id, name, size, percent, x, y) VALUES (?, ?, ?, ?, ?, ?)",
				t.ID, t.Name, t.Size, t.Percent, t.X, t.Y,
			); err != nil {
				return fmt.Errorf("inserting topic %q: %w", t.Name, err)
			}
			for rank, term := range t.TermIDs {
				if _, err := tx.Exec(
					"INSERT INTO topic_terms (topic_id, term, rank) VALUES (?, ?, ?)",
					t.ID, term, rank,
				); err != nil {
					return fmt.Errorf("inserting term %q: %w", term, err)
				}
			}
		}

		for _, d := range ex.Docs {
			if _, err := tx.Exec(
				"INSERT INTO documents (id, content, topic_id, rank, x, y) VALUES (?, ?, ?, ?, ?, ?)",
				d.ID, d.Content, nullable(d.TopicID), d.Rank, d.X, d.Y,
			); err != nil {
				return fmt.Errorf("inserting doc %s: %w", d.ID, err)
			}
		}

		return nil
	})
}

// Topics returns all topics with their terms, largest first.
func (s *Store) Topics() ([]topics.Topic, error) {
	rows, err := s.db.Query(
		"SELECT id, name, size, percent, x, y FROM topics ORDER BY size DESC, name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []topics.Topic
	for rows.Next() {
		var t topics.Topic
		if err := rows.Scan(&t.ID, &t.Name, &t.Size, &t.Percent, &t.X, &t.Y); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		terms, err := s.terms(result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].TermIDs = terms
	}

	return result, nil
}

// terms returns a topic's terms in rank order.
func (s *Store) terms(topicID string) ([]string, error) {
	rows, err := s.db.Query(
		"SELECT term FROM topic_terms WHERE topic_id = ? ORDER BY rank ASC", topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []string
	for rows.Next() {
		var term string
		if err := rows.Scan(&term); err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// TopDocs returns the contents of a topic's documents in rank order,
// at most limit entries (no limit when limit <= 0).
func (s *Store) TopDocs(topicID string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1 // sqlite: LIMIT -1 means unlimited
	}
	rows, err := s.db.Query(
		"SELECT content FROM documents WHERE topic_id = ? ORDER BY rank ASC LIMIT ?",
		topicID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []string
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, err
		}
		docs = append(docs, content)
	}
	return docs, rows.Err()
}

// SearchDocs returns documents whose content contains the substring,
// case-insensitively, at most limit entries.
func (s *Store) SearchDocs(query string, limit int) ([]topics.Document, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(
		`SELECT id, content, COALESCE(topic_id, ''), rank, x, y
		 FROM documents
		 WHERE content LIKE '%' || ? || '%'
		 ORDER BY rank ASC LIMIT ?`,
		query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []topics.Document
	for rows.Next() {
		var d topics.Document
		if err := rows.Scan(&d.ID, &d.Content, &d.TopicID, &d.Rank, &d.X, &d.Y); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Stats returns the stored topic and document counts.
func (s *Store) Stats() (topicCount, docCount int, err error) {
	if err = s.db.QueryRow("SELECT COUNT(*) FROM topics").Scan(&topicCount); err != nil {
		return 0, 0, err
	}
	if err = s.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&docCount); err != nil {
		return 0, 0, err
	}
	return topicCount, docCount, nil
}

// Export rebuilds a full export from the database: topics with terms and
// top-doc contents, plus the document list.
func (s *Store) Export() (*topics.Export, error) {
	ts, err := s.Topics()
	if err != nil {
		return nil, err
	}
	for i := range ts {
		docs, err := s.TopDocs(ts[i].ID, 0)
		if err != nil {
			return nil, err
		}
		ts[i].TopDocs = docs
	}

	rows, err := s.db.Query(
		"SELECT id, content, COALESCE(topic_id, ''), rank, x, y FROM documents ORDER BY topic_id, rank")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []topics.Document
	for rows.Next() {
		var d topics.Document
		if err := rows.Scan(&d.ID, &d.Content, &d.TopicID, &d.Rank, &d.X, &d.Y); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &topics.Export{Topics: ts, Docs: docs}, nil
}

// nullable maps an empty string to NULL for optional foreign keys.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

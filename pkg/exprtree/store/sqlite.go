package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists encoded trees to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite store.
// The path should be a file path (e.g., "./expressions.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Every pooled connection to ":memory:" would get its own database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS expressions (
			namespace TEXT NOT NULL,
			name TEXT NOT NULL,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY (namespace, name)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_expressions_namespace
		ON expressions(namespace)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(namespace, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	// INSERT OR REPLACE semantics; sequence is max + 1 within the namespace
	_, err := s.db.Exec(`
		INSERT INTO expressions (namespace, name, sequence, timestamp, data)
		VALUES (
			?, ?,
			COALESCE((SELECT MAX(sequence) FROM expressions WHERE namespace = ?), 0) + 1,
			?, ?
		)
		ON CONFLICT(namespace, name) DO UPDATE SET
			sequence = (SELECT MAX(sequence) FROM expressions WHERE namespace = excluded.namespace) + 1,
			timestamp = excluded.timestamp,
			data = excluded.data
	`, namespace, name, namespace, time.Now().UTC().Format(time.RFC3339Nano), data)

	if err != nil {
		return fmt.Errorf("save expression: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(namespace, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var data []byte
	err := s.db.QueryRow(`
		SELECT data FROM expressions
		WHERE namespace = ? AND name = ?
	`, namespace, name).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load expression: %w", err)
	}
	return data, nil
}

// List implements Store.
func (s *SQLiteStore) List(namespace string) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT name, sequence, timestamp, LENGTH(data)
		FROM expressions
		WHERE namespace = ?
		ORDER BY sequence
	`, namespace)
	if err != nil {
		return nil, fmt.Errorf("list expressions: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var info Info
		var timestamp string
		if err := rows.Scan(&info.Name, &info.Sequence, &timestamp, &info.Size); err != nil {
			return nil, fmt.Errorf("scan expression info: %w", err)
		}
		info.Namespace = namespace
		info.Timestamp, _ = time.Parse(time.RFC3339Nano, timestamp)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expressions: %w", err)
	}

	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(namespace, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM expressions
		WHERE namespace = ? AND name = ?
	`, namespace, name)
	if err != nil {
		return fmt.Errorf("delete expression: %w", err)
	}
	return nil
}

// DeleteNamespace implements Store.
func (s *SQLiteStore) DeleteNamespace(namespace string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM expressions WHERE namespace = ?
	`, namespace)
	if err != nil {
		return fmt.Errorf("delete namespace: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}

// Package store provides persistent storage for encoded expression
// trees.
package store

import (
	"errors"
	"time"
)

// Store persists encoded expression streams under a namespace and a
// name. Implementations must be safe for concurrent use.
type Store interface {
	// Save stores an encoded tree. Overwrites if an entry for
	// (namespace, name) already exists.
	Save(namespace, name string, data []byte) error

	// Load retrieves an encoded tree.
	// Returns ErrNotFound if the entry doesn't exist.
	Load(namespace, name string) ([]byte, error)

	// List returns all entries in a namespace, ordered by sequence.
	// Returns an empty slice (not an error) if the namespace is empty.
	List(namespace string) ([]Info, error)

	// Delete removes a specific entry.
	// Returns nil if the entry doesn't exist.
	Delete(namespace, name string) error

	// DeleteNamespace removes all entries in a namespace.
	// Returns nil if the namespace is empty.
	DeleteNamespace(namespace string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides entry metadata without loading the encoded stream.
type Info struct {
	Namespace string
	Name      string
	Sequence  int
	Timestamp time.Time
	Size      int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates an entry doesn't exist.
	ErrNotFound = errors.New("expression not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("expression store closed")
)

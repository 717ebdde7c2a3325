package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// NewBadgerStorage - opens an in-memory badger database; nothing is written to disk.
func NewBadgerStorage() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}

	return db, nil
}

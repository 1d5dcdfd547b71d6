package db

import (
	"os"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/johnzilla/woofstagram/internal/config"
)

// OpenSessionDB opens the local embedded database that holds the persisted
// session record. The directory is created if it does not exist.
func OpenSessionDB(cfg config.Config) (*badger.DB, error) {
	path := cfg.SessionDBPath()
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions(path).WithLogger(nil)
	return badger.Open(opts)
}

// OpenInMemory opens a throwaway in-memory database, for tests.
func OpenInMemory() (*badger.DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	return badger.Open(opts)
}

package db

import (
	"errors"

	badger "github.com/dgraph-io/badger/v4"
)

// sessionKey is the fixed key under which the single session record lives.
var sessionKey = []byte("session")

// SessionStore persists at most one serialized session record.
type SessionStore struct {
	db *badger.DB
}

func NewSessionStore(db *badger.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Put(record string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey, []byte(record))
	})
}

// Get returns the persisted record, or "" when none is stored.
func (s *SessionStore) Get() (string, error) {
	var record string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			record = string(val)
			return nil
		})
	})
	return record, err
}

func (s *SessionStore) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey)
	})
}

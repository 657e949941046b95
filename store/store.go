// Package store persists named board positions on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/chessify-dev/chessify/board"
)

const keyPrefix = "position/"

var (
	// ErrNotFound is returned when no position is stored under the
	// requested name.
	ErrNotFound = errors.New("position not found")
)

// Record is the stored form of a bookmarked position. Each record is an
// independent single-position snapshot; the store keeps no move history.
type Record struct {
	Name    string    `json:"name"`
	FEN     string    `json:"fen"`
	SavedAt time.Time `json:"saved_at"`
}

// Store wraps BadgerDB for persistent position storage.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a position store in the given directory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores the position under the given name, replacing any previous
// record with that name.
func (s *Store) Save(name string, b *board.Board) error {
	data, err := json.Marshal(Record{
		Name:    name,
		FEN:     b.FEN(),
		SavedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
}

// Load rebuilds the position stored under the given name.
func (s *Store) Load(name string) (*board.Board, error) {
	rec, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return board.NewBoard(board.WithFEN(rec.FEN))
}

// Get returns the raw record stored under the given name.
func (s *Store) Get(name string) (Record, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	return rec, err
}

// List returns all stored records sorted by name.
func (s *Store) List() ([]Record, error) {
	var recs []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Name < recs[j].Name })
	return recs, nil
}

// Delete removes the position stored under the given name.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(name))
	})
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

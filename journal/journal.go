// Package journal keeps an append-only record of translations in badger so
// operators can review what the translation service has been producing.
package journal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"sqlgate/models"
)

const keyPrefix = "translation:"

type Journal struct {
	badgerDB *badger.DB
	now      func() time.Time
}

func Open(path string) (*Journal, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	return open(opts)
}

// OpenInMemory is used by tests.
func OpenInMemory() (*Journal, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*Journal, error) {
	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return &Journal{badgerDB: badgerDB, now: time.Now}, nil
}

func (j *Journal) Close() error {
	return j.badgerDB.Close()
}

// Record appends one translation. Keys sort by time so Recent can scan
// backwards.
func (j *Journal) Record(naturalQuery string, t models.Translation) error {
	ts := j.now().UTC()
	entry := models.JournalEntry{
		NaturalQuery: naturalQuery,
		SQLText:      t.SQLText,
		ModelInfo:    t.ModelInfo,
		Timestamp:    ts.Format(time.RFC3339Nano),
	}
	if t.Validation != nil {
		entry.Warnings = t.Validation.Warnings
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return j.badgerDB.Update(func(txn *badger.Txn) error {
		key := []byte(fmt.Sprintf("%s%020d", keyPrefix, ts.UnixNano()))
		return txn.Set(key, data)
	})
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]models.JournalEntry, error) {
	entries := make([]models.JournalEntry, 0)
	if limit <= 0 {
		return entries, nil
	}

	err := j.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// reverse iteration must seek past the last possible key under the prefix
		seek := append([]byte(keyPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix) && len(entries) < limit; it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var entry models.JournalEntry
				if err := json.Unmarshal(val, &entry); err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return entries, err
}

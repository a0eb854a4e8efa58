package database

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v2"
	"github.com/dgraph-io/badger/v2/options"
)

const valueLogGCDiscardRatio = 0.1

// ErrKeyNotFound is returned when a key does not exist in the DB.
var ErrKeyNotFound = errors.New("key not found")

// DB is a badger backed key-value store. Keys are iterated in lexicographic order.
type DB struct {
	*badger.DB

	inMemory bool
}

// NewDB returns a new persisting DB object.
func NewDB(dirname string) (*DB, error) {
	// assure that the directory exists
	if err := createDir(dirname); err != nil {
		return nil, errors.Errorf("could not create DB directory: %w", err)
	}

	opts := badger.DefaultOptions(dirname)

	opts.Logger = nil
	opts.SyncWrites = false
	opts.TableLoadingMode = options.MemoryMap
	opts.ValueLogLoadingMode = options.MemoryMap
	opts.CompactL0OnClose = false
	opts.KeepL0InMemory = false
	opts.VerifyValueChecksum = false
	opts.ZSTDCompressionLevel = 1
	opts.Compression = options.None
	opts.BlockCacheSize = 50000000

	if runtime.GOOS == "windows" {
		opts = opts.WithTruncate(true)
	}

	return open(opts, false)
}

// NewMemDB returns a new in-memory (not persisted) DB object.
func NewMemDB() (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts, true)
}

func open(opts badger.Options, inMemory bool) (*DB, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Errorf("could not open DB: %w", err)
	}

	return &DB{DB: db, inMemory: inMemory}, nil
}

// Get returns a copy of the value stored under key.
func (db *DB) Get(key []byte) (value []byte, err error) {
	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		value, err = item.ValueCopy(nil)

		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}

	return value, err
}

// Has returns true if a value is stored under key.
func (db *DB) Has(key []byte) (bool, error) {
	if _, err := db.Get(key); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// Set stores value under key.
func (db *DB) Set(key, value []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(key []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Iterate calls consumer for every entry whose key starts with prefix until it returns false. The key passed to the
// consumer has the prefix stripped.
func (db *DB) Iterate(prefix []byte, consumer func(key, value []byte) bool) error {
	return db.View(func(txn *badger.Txn) error {
		iterator := txn.NewIterator(badger.DefaultIteratorOptions)
		defer iterator.Close()

		for iterator.Seek(prefix); iterator.ValidForPrefix(prefix); iterator.Next() {
			item := iterator.Item()

			key := item.KeyCopy(nil)
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}

			if !consumer(key[len(prefix):], value) {
				return nil
			}
		}

		return nil
	})
}

// RequiresGC returns true if the value log of the DB needs to be garbage collected.
func (db *DB) RequiresGC() bool {
	return !db.inMemory
}

// GC runs the value log garbage collection of the DB.
func (db *DB) GC() error {
	if !db.RequiresGC() {
		return nil
	}

	if err := db.RunValueLogGC(valueLogGCDiscardRatio); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
		return err
	}
	// trigger the go garbage collector to release the used memory
	runtime.GC()

	return nil
}

// Returns whether the given file or directory exists.
func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, err
}

func createDir(dirname string) error {
	exists, err := exists(dirname)
	if err != nil {
		return err
	}
	if !exists {
		return os.MkdirAll(dirname, 0700)
	}
	return nil
}

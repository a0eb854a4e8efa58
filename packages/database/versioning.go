package database

import (
	"github.com/cockroachdb/errors"
)

const (
	// DBVersion defines the version of the database schema this version supports.
	// everytime there's a breaking change regarding the stored data, this version flag should be adjusted.
	DBVersion = 1
)

var (
	// ErrDBVersionIncompatible is returned when the database was written with a different schema version.
	ErrDBVersionIncompatible = errors.New("database version is not compatible. please delete your database folder and restart")

	// the key under which the database version is stored
	dbVersionKey = []byte{PrefixDatabaseVersion}
)

// CheckDatabaseVersion checks whether the database is compatible with the current schema version.
// It also sets the version if the database is new.
func CheckDatabaseVersion(db *DB) error {
	version, err := db.Get(dbVersionKey)
	if errors.Is(err, ErrKeyNotFound) {
		// store db version for the first time in the new database
		if err = db.Set(dbVersionKey, []byte{DBVersion}); err != nil {
			return errors.Errorf("unable to persist db version number: %w", err)
		}

		return nil
	}
	if err != nil {
		return errors.Errorf("failed to read db version: %w", err)
	}

	if len(version) != 1 || version[0] != DBVersion {
		return errors.Errorf("%w: supported version: %d, version of database: %v", ErrDBVersionIncompatible, DBVersion, version)
	}

	return nil
}

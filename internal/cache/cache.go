// Package cache is an on-disk store of prior compile outcomes, keyed by
// a hash of the expression JSON and the expected type. A hit still
// requires re-running compile.Compile to obtain a usable Callable (a
// closure can't survive a restart), but it lets a caller that validates
// many style layers skip re-deriving a result it has already validated.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one cached compile outcome.
type Entry struct {
	ID                string
	ResultType        string
	IsFeatureConstant bool
	IsZoomConstant    bool
	Errors            []string
}

// Store is a SQLite-backed cache. Safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open creates (if needed) and opens the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS compile_cache (
	key TEXT PRIMARY KEY,
	id TEXT NOT NULL,
	result_type TEXT NOT NULL,
	is_feature_constant INTEGER NOT NULL,
	is_zoom_constant INTEGER NOT NULL,
	errors_json TEXT NOT NULL,
	cached_at TEXT NOT NULL
)`

// Key derives the cache lookup key for an (expression, expectedType)
// pair. Expression must already be the canonical JSON encoding the
// caller used to compile it.
func Key(expressionJSON []byte, expectedType string) string {
	h := sha256.New()
	h.Write(expressionJSON)
	h.Write([]byte{0})
	h.Write([]byte(expectedType))
	return hex.EncodeToString(h.Sum(nil))
}

// Get looks up key, reporting (entry, true, nil) on a hit.
func (s *Store) Get(key string) (Entry, bool, error) {
	row := s.db.QueryRow(`SELECT id, result_type, is_feature_constant, is_zoom_constant, errors_json FROM compile_cache WHERE key = ?`, key)

	var e Entry
	var featureConstant, zoomConstant int
	var errorsJSON string
	if err := row.Scan(&e.ID, &e.ResultType, &featureConstant, &zoomConstant, &errorsJSON); err != nil {
		if err == sql.ErrNoRows {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}
	e.IsFeatureConstant = featureConstant != 0
	e.IsZoomConstant = zoomConstant != 0
	if err := json.Unmarshal([]byte(errorsJSON), &e.Errors); err != nil {
		return Entry{}, false, fmt.Errorf("cache: corrupt errors_json for key %s: %w", key, err)
	}
	return e, true, nil
}

// Put upserts an entry, stamping it with a fresh correlation ID so
// repeated compiles of the same expression remain distinguishable in
// logs even though they share a cache key.
func (s *Store) Put(key string, entry Entry) error {
	entry.ID = uuid.NewString()
	errorsJSON, err := json.Marshal(entry.Errors)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO compile_cache (key, id, result_type, is_feature_constant, is_zoom_constant, errors_json, cached_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET
		   id=excluded.id, result_type=excluded.result_type,
		   is_feature_constant=excluded.is_feature_constant,
		   is_zoom_constant=excluded.is_zoom_constant,
		   errors_json=excluded.errors_json, cached_at=excluded.cached_at`,
		key, entry.ID, entry.ResultType, boolToInt(entry.IsFeatureConstant), boolToInt(entry.IsZoomConstant), string(errorsJSON), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

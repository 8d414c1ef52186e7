package kb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS states (
	state    TEXT PRIMARY KEY,
	distance INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS corner_patterns (
	pattern  TEXT PRIMARY KEY,
	distance INTEGER NOT NULL
);
`

// Store persists knowledge base tables to a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// DefaultPath returns the default database path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("kb: failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, ".cubesolver")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("kb: failed to create config directory: %w", err)
	}
	return filepath.Join(dir, "knowledge.db"), nil
}

// OpenStore opens (or creates) the SQLite database at the given path and
// initializes the schema.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("kb: failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kb: failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("kb: failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("kb: failed to initialize schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (st *Store) Path() string {
	return st.path
}

// Close releases the database handle.
func (st *Store) Close() error {
	return st.db.Close()
}

// Save replaces the persisted knowledge base with the given table. Distance
// values round-trip exactly through Load.
func (st *Store) Save(ctx context.Context, t *Table) error {
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kb: failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{"DELETE FROM states", "DELETE FROM corner_patterns", "DELETE FROM meta"} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("kb: failed to clear table: %w", err)
		}
	}

	metaStmt, err := tx.PrepareContext(ctx, "INSERT INTO meta (key, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("kb: failed to prepare meta insert: %w", err)
	}
	defer metaStmt.Close()
	for key, value := range map[string]int{"dimension": t.n, "max_depth": t.maxDepth} {
		if _, err := metaStmt.ExecContext(ctx, key, value); err != nil {
			return fmt.Errorf("kb: failed to write meta %s: %w", key, err)
		}
	}

	stateStmt, err := tx.PrepareContext(ctx, "INSERT INTO states (state, distance) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("kb: failed to prepare state insert: %w", err)
	}
	defer stateStmt.Close()
	for s, d := range t.states {
		if _, err := stateStmt.ExecContext(ctx, s.String(), int(d)); err != nil {
			return fmt.Errorf("kb: failed to write state: %w", err)
		}
	}

	patternStmt, err := tx.PrepareContext(ctx, "INSERT INTO corner_patterns (pattern, distance) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("kb: failed to prepare pattern insert: %w", err)
	}
	defer patternStmt.Close()
	for pattern, d := range t.corners {
		if _, err := patternStmt.ExecContext(ctx, pattern, int(d)); err != nil {
			return fmt.Errorf("kb: failed to write pattern: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("kb: failed to commit: %w", err)
	}
	return nil
}

// Load reads the persisted knowledge base. A missing or corrupt database
// yields ErrUnavailable so callers can degrade to weaker heuristics.
func (st *Store) Load(ctx context.Context) (*Table, error) {
	var n, maxDepth int
	err := st.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'dimension'").Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no table at %s", ErrUnavailable, st.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := st.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = 'max_depth'").Scan(&maxDepth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	table := newTable(n, maxDepth)

	rows, err := st.db.QueryContext(ctx, "SELECT state, distance FROM states")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()
	for rows.Next() {
		var raw string
		var distance int
		if err := rows.Scan(&raw, &distance); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s, err := cube.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: corrupt state entry: %v", ErrUnavailable, err)
		}
		table.states[s] = uint8(distance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	patterns, err := st.db.QueryContext(ctx, "SELECT pattern, distance FROM corner_patterns")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer patterns.Close()
	for patterns.Next() {
		var pattern string
		var distance int
		if err := patterns.Scan(&pattern, &distance); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		table.corners[pattern] = uint8(distance)
	}
	if err := patterns.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return table, nil
}

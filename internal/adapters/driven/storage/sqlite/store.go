package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/marcassist/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/marcassist/internal/core/domain"
	"github.com/custodia-labs/marcassist/internal/core/ports/driven"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "cutter.db"

// Ensure Store implements the interfaces.
var (
	_ driven.CutterTableStore  = (*Store)(nil)
	_ driven.CutterTableWriter = (*Store)(nil)
)

// Store is a SQLite-backed Cutter table.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database in dataDir.
// If dataDir is empty, defaults to ~/.marcassist/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".marcassist", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every entry into an immutable table.
func (s *Store) Load(ctx context.Context) (*domain.CutterTable, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT prefix, digits FROM cutter_entries`)
	if err != nil {
		return nil, fmt.Errorf("querying cutter entries: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]string)
	for rows.Next() {
		var prefix, digits string
		if err := rows.Scan(&prefix, &digits); err != nil {
			return nil, fmt.Errorf("scanning cutter entry: %w", err)
		}
		entries[prefix] = digits
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cutter entries: %w", err)
	}
	return domain.NewCutterTable(entries), nil
}

// Replace swaps the whole table in one transaction.
func (s *Store) Replace(ctx context.Context, entries map[string]string) error {
	// Normalise through the domain type so stored keys match lookups.
	table := domain.NewCutterTable(entries)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cutter_entries`); err != nil {
		return fmt.Errorf("clearing cutter entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cutter_entries (prefix, digits) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for prefix, digits := range table.Entries() {
		if _, err := stmt.ExecContext(ctx, prefix, digits); err != nil {
			return fmt.Errorf("inserting %q: %w", prefix, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing cutter entries: %w", err)
	}
	return nil
}

// migrate applies embedded NNN_name.up.sql files newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		return err
	}
	return tx.Commit()
}

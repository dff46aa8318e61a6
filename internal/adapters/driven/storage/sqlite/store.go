package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gauravmm/typst-iso-7000/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/gauravmm/typst-iso-7000/internal/core/domain"
	"github.com/gauravmm/typst-iso-7000/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SymbolStore = (*Store)(nil)

// Store is the SQLite-backed symbol catalogue cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a store at the specified data directory.
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalogue.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
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
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
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
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ReplaceAll atomically replaces the stored catalogue and records the
// fetch time.
func (s *Store) ReplaceAll(ctx context.Context, records []domain.SymbolRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM symbols"); err != nil {
		return fmt.Errorf("clearing symbols: %w", err)
	}

	for _, rec := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO symbols (ref, title, user, user_id, url, license_name, license_url, description, description_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.Ref, rec.Title, rec.User, rec.UserID, rec.URL,
			rec.LicenseName, rec.LicenseURL, rec.Description, rec.DescriptionURL)
		if err != nil {
			return fmt.Errorf("inserting symbol %s: %w", rec.Ref, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO fetch_state (id, fetched_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET fetched_at = excluded.fetched_at
	`, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("recording fetch time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalogue: %w", err)
	}
	return nil
}

// List returns all stored records in reference-id order.
func (s *Store) List(ctx context.Context) ([]domain.SymbolRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ref, title, user, user_id, url, license_name, license_url, description, description_url
		FROM symbols ORDER BY ref
	`)
	if err != nil {
		return nil, fmt.Errorf("querying symbols: %w", err)
	}
	defer rows.Close()

	var records []domain.SymbolRecord
	for rows.Next() {
		var rec domain.SymbolRecord
		if err := rows.Scan(&rec.Ref, &rec.Title, &rec.User, &rec.UserID, &rec.URL,
			&rec.LicenseName, &rec.LicenseURL, &rec.Description, &rec.DescriptionURL); err != nil {
			return nil, fmt.Errorf("scanning symbol: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM symbols")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting symbols: %w", err)
	}
	return n, nil
}

// LastFetched returns when the catalogue was last replaced.
func (s *Store) LastFetched(ctx context.Context) (time.Time, error) {
	var fetched time.Time
	row := s.db.QueryRowContext(ctx, "SELECT fetched_at FROM fetch_state WHERE id = 1")
	if err := row.Scan(&fetched); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("reading fetch state: %w", err)
	}
	return fetched, nil
}

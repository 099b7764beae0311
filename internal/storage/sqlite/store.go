package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/Akkumon/HealBit/internal/logger"
	"github.com/Akkumon/HealBit/internal/migration"
	"github.com/Akkumon/HealBit/internal/storage"
	"github.com/Akkumon/HealBit/migrations"
)

// Store is the SQLite-backed storage gateway. The database handle is opened
// once and reused for the life of the process; callers share a single Store.
type Store struct {
	path string
	db   *sql.DB
}

var _ storage.Provider = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

// Init creates the config directory and database on first use and brings the
// schema up to the latest version.
func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return &storage.UnavailableError{Path: s.path, Err: err}
	}

	if err := s.open(); err != nil {
		return err
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Load opens an existing database, refusing to proceed when the on-disk
// schema is newer than this build supports.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'healbit init' first")
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return &storage.UnavailableError{Path: s.path, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return &storage.UnavailableError{Path: s.path, Err: err}
	}
	s.db = db
	return nil
}

// MigrationFS exposes the embedded sqlite migration files for diagnostics.
func (s *Store) MigrationFS() (fs.FS, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return subFS, nil
}

func (s *Store) runMigrations() error {
	subFS, err := s.MigrationFS()
	if err != nil {
		return err
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(func(msg string) {
		logger.Info(msg)
	})
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := s.MigrationFS()
	if err != nil {
		return err
	}
	return migration.NewRunner(s.db, subFS).Validate()
}

// SchemaVersion reports the applied schema version, for diagnostics.
func (s *Store) SchemaVersion() (int, error) {
	subFS, err := s.MigrationFS()
	if err != nil {
		return 0, err
	}
	return migration.NewRunner(s.db, subFS).CurrentVersion()
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

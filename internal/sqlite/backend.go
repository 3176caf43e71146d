// Package sqlite implements the SQLite storage backend for Tix: idempotent
// schema bootstrap with first-run seeding, credential verification, and the
// ticket repository.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/tix/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "tix.db"

// Backend owns the single physical SQLite connection. Every operation
// acquires mu for its full duration, including any re-read after a write, so
// all storage access is strictly serialized.
type Backend struct {
	mu       sync.Mutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. It creates
// DataDir if needed, opens the database, creates the schema if absent, and
// seeds the default account and sample tickets on first run.
//
// Any error here is fatal to the backend: the caller must not serve
// operations with a store that failed to attach.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	// One physical connection; mu is the only serialization point.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	if err := seedDefaults(db); err != nil {
		db.Close()
		return fmt.Errorf("seed defaults: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	return nil
}

// Detach releases the SQLite connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// now returns the current UTC time truncated to whole seconds, so that a
// timestamp survives the RFC 3339 round trip through the store unchanged.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// formatTime renders a timestamp for storage in a TEXT column.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// parseTime reads a timestamp back from a TEXT column.
func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

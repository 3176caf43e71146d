// Shared helpers for tix CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/tix/internal/sqlite"
	"github.com/mesh-intelligence/tix/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach(). An attach failure is
// fatal: the store is unusable and no command may proceed.
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// printJSON writes the value as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printTicket writes a human-readable ticket summary to stdout.
func printTicket(t *types.Ticket) {
	fmt.Printf("ID:          %s\n", t.ID)
	fmt.Printf("Category:    %s\n", t.Category)
	fmt.Printf("Title:       %s\n", t.Title)
	fmt.Printf("Description: %s\n", t.Description)
	fmt.Printf("Status:      %s\n", t.Status)
	fmt.Printf("Assignee:    %s\n", t.Assignee)
	fmt.Printf("Reporter:    %s\n", t.Reporter)
	fmt.Printf("Created:     %s\n", t.CreatedDate.Format(time.RFC3339))
	fmt.Printf("Updated:     %s\n", t.UpdatedAt.Format(time.RFC3339))
}

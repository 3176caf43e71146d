// Schema DDL for the users and tickets tables. All statements use
// IF NOT EXISTS so bootstrap is safe to run on every start.
package sqlite

import "database/sql"

const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createTickets = `CREATE TABLE IF NOT EXISTS tickets (
    id TEXT PRIMARY KEY,
    category TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    created_date TEXT NOT NULL,
    assignee TEXT NOT NULL,
    reporter TEXT NOT NULL,
    status TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// Index DDL for common queries.
const (
	idxTicketsCreated = `CREATE INDEX IF NOT EXISTS idx_tickets_created ON tickets(created_date);`
	idxTicketsStatus  = `CREATE INDEX IF NOT EXISTS idx_tickets_status ON tickets(status);`
)

// schemaDDL lists all statements in execution order.
var schemaDDL = []string{
	createUsers,
	createTickets,
	idxTicketsCreated,
	idxTicketsStatus,
}

// createSchema executes the idempotent DDL statements.
func createSchema(db *sql.DB) error {
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}

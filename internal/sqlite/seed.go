// First-run seeding: the default admin account and a fixed set of sample
// tickets. Seeding is keyed on the admin user, so re-running bootstrap never
// duplicates the account or the samples.
package sqlite

import (
	"database/sql"
	"fmt"
)

// Default account created on first startup.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// sampleTicket describes a ticket to seed alongside the admin account.
type sampleTicket struct {
	category    string
	title       string
	description string
	assignee    string
	reporter    string
	status      string
}

// sampleTickets defines the tickets seeded on first startup. They share one
// creation timestamp and carry a spread of statuses.
var sampleTickets = []sampleTicket{
	{
		category:    "Bug",
		title:       "Login page not responsive",
		description: "The login page doesn't work properly on mobile devices",
		assignee:    "admin",
		reporter:    "user1",
		status:      "Open",
	},
	{
		category:    "Feature",
		title:       "Add dark mode",
		description: "Implement dark mode theme for better user experience",
		assignee:    "admin",
		reporter:    "user2",
		status:      "In Progress",
	},
	{
		category:    "Bug",
		title:       "Database connection timeout",
		description: "Users experiencing timeout when accessing large datasets",
		assignee:    "admin",
		reporter:    "user1",
		status:      "Closed",
	},
	{
		category:    "Enhancement",
		title:       "Improve search functionality",
		description: "Add advanced filters and sorting options to search",
		assignee:    "admin",
		reporter:    "user3",
		status:      "Open",
	},
}

// seedDefaults creates the admin account and the sample tickets if the admin
// user does not exist. Both inserts run in one transaction, so a failed seed
// leaves no partial state behind.
func seedDefaults(db *sql.DB) error {
	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username = ?", defaultAdminUsername,
	).Scan(&count); err != nil {
		return fmt.Errorf("counting admin users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hashPassword(defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing default password: %w", err)
	}

	seedTime := now()
	seedTimeStr := formatTime(seedTime)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO users (id, username, password_hash, created_at) VALUES (?, ?, ?, ?)",
		generateUUID(), defaultAdminUsername, hash, seedTimeStr,
	)
	if err != nil {
		return fmt.Errorf("seeding admin user: %w", err)
	}

	for _, st := range sampleTickets {
		_, err = tx.Exec(
			"INSERT INTO tickets (id, category, title, description, created_date, assignee, reporter, status, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			generateUUID(), st.category, st.title, st.description,
			seedTimeStr, st.assignee, st.reporter, st.status, seedTimeStr,
		)
		if err != nil {
			return fmt.Errorf("seeding ticket %q: %w", st.title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}

	return nil
}

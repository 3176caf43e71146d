// Ticket repository: list, get, create, and partial-update operations over
// the tickets table. The update statement is assembled dynamically from the
// fields present in the patch; values are always bound, never interpolated.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tix/pkg/types"
)

const ticketColumns = "id, category, title, description, created_date, assignee, reporter, status, updated_at"

// ListTickets returns all tickets ordered by creation date, newest first.
// An empty store yields an empty slice, not an error.
func (b *Backend) ListTickets() ([]*types.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT " + ticketColumns + " FROM tickets ORDER BY created_date DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	defer rows.Close()

	tickets := []*types.Ticket{}
	for rows.Next() {
		t, err := hydrateTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tickets: %w", err)
	}

	return tickets, nil
}

// GetTicket retrieves a ticket by ID.
// Returns ErrTicketNotFound if no row matches.
func (b *Backend) GetTicket(id string) (*types.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	return b.getTicketLocked(id)
}

// CreateTicket persists a new ticket and returns the constructed record.
// The ticket always starts in status Open with created_date equal to
// updated_at, regardless of anything the caller might have intended.
func (b *Backend) CreateTicket(category, title, description, assignee, reporter string) (*types.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	created := now()
	t := &types.Ticket{
		ID:          generateUUID(),
		Category:    category,
		Title:       title,
		Description: description,
		CreatedDate: created,
		Assignee:    assignee,
		Reporter:    reporter,
		Status:      types.StatusOpen,
		UpdatedAt:   created,
	}

	_, err := b.db.Exec(
		"INSERT INTO tickets ("+ticketColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		t.ID, t.Category, t.Title, t.Description, formatTime(t.CreatedDate),
		t.Assignee, t.Reporter, t.Status, formatTime(t.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	return t, nil
}

// UpdateTicket applies a partial update to the ticket with the given ID.
// Only the columns present in the patch are touched; updated_at is refreshed
// unconditionally. An empty patch fails with ErrNoFields, a missing row with
// ErrTicketNotFound. On success the record is re-read so the caller sees the
// authoritative stored state.
func (b *Backend) UpdateTicket(id string, patch types.TicketPatch) (*types.Ticket, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if patch.IsZero() {
		return nil, types.ErrNoFields
	}

	var sets []string
	var args []any
	addSet := func(column string, value *string) {
		if value != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *value)
		}
	}
	addSet("status", patch.Status)
	addSet("assignee", patch.Assignee)
	addSet("category", patch.Category)
	addSet("title", patch.Title)
	addSet("description", patch.Description)

	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(now()))
	args = append(args, id)

	res, err := b.db.Exec(
		"UPDATE tickets SET "+strings.Join(sets, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("updating ticket %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, types.ErrTicketNotFound
	}

	return b.getTicketLocked(id)
}

// getTicketLocked performs the exact-ID lookup. The caller must hold b.mu.
func (b *Backend) getTicketLocked(id string) (*types.Ticket, error) {
	row := b.db.QueryRow(
		"SELECT "+ticketColumns+" FROM tickets WHERE id = ?", id,
	)
	t, err := hydrateTicket(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTicketNotFound
		}
		return nil, fmt.Errorf("getting ticket %s: %w", id, err)
	}
	return t, nil
}

// rowScanner abstracts sql.Row and sql.Rows for ticket hydration.
type rowScanner interface {
	Scan(dest ...any) error
}

// hydrateTicket converts a SQLite row into a *types.Ticket.
func hydrateTicket(s rowScanner) (*types.Ticket, error) {
	var t types.Ticket
	var createdDate, updatedAt string
	err := s.Scan(
		&t.ID, &t.Category, &t.Title, &t.Description, &createdDate,
		&t.Assignee, &t.Reporter, &t.Status, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.CreatedDate, err = parseTime(createdDate)
	if err != nil {
		return nil, fmt.Errorf("parsing created_date: %w", err)
	}
	t.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &t, nil
}

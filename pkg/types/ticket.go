package types

import (
	"errors"
	"time"
)

// Conventional ticket status values. The status column is free text: these
// constants are the values the seed data and the CLI use, but the store
// accepts any string.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

// Ticket represents a support ticket in the tickets table.
type Ticket struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"created_date"` // immutable after creation
	Assignee    string    `json:"assignee"`
	Reporter    string    `json:"reporter"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"` // refreshed on every mutation
}

// TicketPatch carries the optional fields for a partial update. A nil field
// leaves the corresponding column untouched.
type TicketPatch struct {
	Status      *string `json:"status,omitempty"`
	Assignee    *string `json:"assignee,omitempty"`
	Category    *string `json:"category,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// IsZero reports whether no field of the patch is set.
func (p TicketPatch) IsZero() bool {
	return p.Status == nil && p.Assignee == nil && p.Category == nil &&
		p.Title == nil && p.Description == nil
}

// Ticket operation errors.
var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrNoFields       = errors.New("no fields to update")
)

// Backend lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

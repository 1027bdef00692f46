// Package domain contains the core data types for the RSVP import service.
// This package has no dependencies beyond google/uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// GuestRecord is one survey response in canonical form.
// Transient records (built from a sheet row, not yet stored) have a zero ID
// and CreatedAt. Stored records are never modified.
type GuestRecord struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Relation       string    `json:"relation"`
	AttendStatus   string    `json:"attend_status"`
	WithGuest      string    `json:"with_guest"`
	NeedChildSeat  string    `json:"need_child_seat"`
	NeedVegetarian string    `json:"need_vegetarian"`
	NeedInvitation string    `json:"need_invitation"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Message        string    `json:"message"`
	AnswerTime     string    `json:"answer_time"`
	AnswerSeconds  float64   `json:"answer_seconds"`
	IP             string    `json:"ip"`
	FullFlag       string    `json:"full_flag"`
	UserRecord     string    `json:"user_record"`
	MemberTime     string    `json:"member_time"`
	Hash           string    `json:"hash"` // empty means "no identity asserted"
	CreatedAt      time.Time `json:"created_at"`
}

// RawRow maps spreadsheet header labels to cell text for a single data row.
// Cells that are absent in the sheet are present here as "".
type RawRow map[string]string

// IngestionOutcome summarizes one upload.
// Inserted is the reported figure; the other counters are diagnostics for
// logs and metrics only.
type IngestionOutcome struct {
	Inserted   int
	Duplicates int
	Failed     int
	Rows       int
}

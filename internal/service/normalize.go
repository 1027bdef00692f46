// Package service contains the business logic for the RSVP import service.
// Services turn uploaded sheets into records and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"strconv"
	"strings"

	"github.com/pkordes/rsvp-import/internal/domain"
)

// setters writes one normalized cell into a record. A blank cell is never
// passed in, so every field keeps its zero value as the default.
var setters = map[domain.Field]func(g *domain.GuestRecord, v string){
	domain.FieldName:           func(g *domain.GuestRecord, v string) { g.Name = v },
	domain.FieldRelation:       func(g *domain.GuestRecord, v string) { g.Relation = v },
	domain.FieldAttendStatus:   func(g *domain.GuestRecord, v string) { g.AttendStatus = v },
	domain.FieldWithGuest:      func(g *domain.GuestRecord, v string) { g.WithGuest = v },
	domain.FieldNeedChildSeat:  func(g *domain.GuestRecord, v string) { g.NeedChildSeat = v },
	domain.FieldNeedVegetarian: func(g *domain.GuestRecord, v string) { g.NeedVegetarian = v },
	domain.FieldNeedInvitation: func(g *domain.GuestRecord, v string) { g.NeedInvitation = v },
	domain.FieldEmail:          func(g *domain.GuestRecord, v string) { g.Email = v },
	domain.FieldAddress:        func(g *domain.GuestRecord, v string) { g.Address = v },
	domain.FieldPhone:          func(g *domain.GuestRecord, v string) { g.Phone = v },
	domain.FieldMessage:        func(g *domain.GuestRecord, v string) { g.Message = v },
	domain.FieldAnswerTime:     func(g *domain.GuestRecord, v string) { g.AnswerTime = v },
	domain.FieldAnswerSeconds: func(g *domain.GuestRecord, v string) {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			g.AnswerSeconds = n
		}
	},
	domain.FieldIP:         func(g *domain.GuestRecord, v string) { g.IP = v },
	domain.FieldFullFlag:   func(g *domain.GuestRecord, v string) { g.FullFlag = v },
	domain.FieldUserRecord: func(g *domain.GuestRecord, v string) { g.UserRecord = v },
	domain.FieldMemberTime: func(g *domain.GuestRecord, v string) { g.MemberTime = v },
	domain.FieldHash:       func(g *domain.GuestRecord, v string) { g.Hash = v },
}

// Normalizer turns label-keyed sheet rows into GuestRecords.
type Normalizer struct {
	mapping domain.HeaderMapping
}

// NewNormalizer constructs a Normalizer that reads each field from the
// column labelled as in mapping. Callers validate the mapping beforehand.
func NewNormalizer(mapping domain.HeaderMapping) *Normalizer {
	return &Normalizer{mapping: mapping}
}

// Normalize copies every mapped cell into a new record, trimmed of
// surrounding whitespace. Absent or blank cells leave the field's default;
// an answer_seconds cell that is not a number counts as blank.
// Values are otherwise transcribed as-is, without validation.
func (n *Normalizer) Normalize(row domain.RawRow) domain.GuestRecord {
	var g domain.GuestRecord
	for _, f := range domain.Fields {
		label, ok := n.mapping[f]
		if !ok {
			continue
		}
		v := strings.TrimSpace(row[label])
		if v == "" {
			continue
		}
		setters[f](&g, v)
	}
	return g
}

// MissingFields lists, in column order, the fields whose label does not
// appear among headers. Rows from such a sheet still normalize; those
// fields just stay at their defaults.
func (n *Normalizer) MissingFields(headers []string) []domain.Field {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []domain.Field
	for _, f := range domain.Fields {
		if !present[n.mapping[f]] {
			missing = append(missing, f)
		}
	}
	return missing
}

// Recognizes reports whether at least one mapped label appears among headers.
// A sheet that matches none is not a survey export.
func (n *Normalizer) Recognizes(headers []string) bool {
	return len(n.MissingFields(headers)) < len(domain.Fields)
}

// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

/*
Package volume implements the cataloging core of Periodika: physical volumes
of a periodical, the specimens bound inside them, and the repair, renumbering,
and duplication rules the volume-management workflow is built on.

# Domain

A volume is a bound or boxed collection of specimens covering a date range.
Its weekly periodicity template drives the generation of per-day specimen
drafts, and its specimens carry the issue-sequence numbers the renumbering
engine maintains.
*/
package volume

import "github.com/mzalesak/periodika/internal/platform/constants"

// # Field Identifiers

const (
	FieldBarCode     = "bar_code"
	FieldMetaTitleID = "meta_title_id"
	FieldMutationID  = "mutation_id"
	FieldOwnerID     = "owner_id"
	FieldDateFrom    = "date_from"
	FieldDateTo      = "date_to"
	FieldPeriodicity = "periodicity"
	FieldAnchorID    = "anchor_id"
	FieldSequence    = "sequence"
)

// Volume represents a physically bound collection of specimens of one
// periodical over a date range.
type Volume struct {
	ID           string `json:"id"`
	BarCode      string `json:"bar_code"`
	Signature    string `json:"signature"`
	MetaTitleID  string `json:"meta_title_id"`
	MutationID   string `json:"mutation_id"`
	OwnerID      string `json:"owner_id"`
	Year         int    `json:"year"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	MutationMark string `json:"mutation_mark"`

	// FirstNumber and LastNumber are informational sequence bounds for the
	// contained specimens. constants.UnsetNumber (-1) means "not entered";
	// zero is a valid issue number.
	FirstNumber int `json:"first_number"`
	LastNumber  int `json:"last_number"`

	// Periodicity always holds exactly 7 entries, one per weekday,
	// Monday first.
	Periodicity []PeriodicityEntry `json:"periodicity"`

	// ShowAttachmentsAtTheEnd sorts attachment specimens after the main
	// sequence in table views without changing any stored numbers.
	ShowAttachmentsAtTheEnd bool   `json:"show_attachments_at_the_end"`
	Note                    string `json:"note"`
}

// Detail bundles a volume with its specimens in display order.
type Detail struct {
	Volume    *Volume     `json:"volume"`
	Specimens []*Specimen `json:"specimens"`
}

// AsDraft converts a repaired volume back into an edit buffer.
//
// The cataloging clients round-trip volumes through this form; it is also
// what makes the repair function testable for idempotence.
func (v Volume) AsDraft() Draft {
	entries := make([]PeriodicityEntryDraft, 0, len(v.Periodicity))
	for _, entry := range v.Periodicity {
		entries = append(entries, PeriodicityEntryDraft{
			Weekday:       entry.Weekday,
			Active:        entry.Active,
			PublicationID: entry.PublicationID,
			PagesCount:    entry.PagesCount,
			Name:          entry.Name,
			SubName:       entry.SubName,
			IsAttachment:  entry.IsAttachment,
		})
	}

	return Draft{
		ID:                      v.ID,
		BarCode:                 v.BarCode,
		Signature:               v.Signature,
		MetaTitleID:             v.MetaTitleID,
		MutationID:              v.MutationID,
		OwnerID:                 v.OwnerID,
		Year:                    v.Year,
		DateFrom:                v.DateFrom,
		DateTo:                  v.DateTo,
		MutationMark:            v.MutationMark,
		FirstNumber:             v.FirstNumber,
		LastNumber:              v.LastNumber,
		Periodicity:             entries,
		ShowAttachmentsAtTheEnd: v.ShowAttachmentsAtTheEnd,
		Note:                    v.Note,
	}
}

// Draft is the loosely-typed volume edit buffer received from cataloging
// clients. Numeric fields arrive string-or-number encoded depending on which
// form control produced them, hence the `any` typing; [Repair] coerces them.
type Draft struct {
	ID           string `json:"id"`
	BarCode      string `json:"bar_code"`
	Signature    string `json:"signature"`
	MetaTitleID  string `json:"meta_title_id"`
	MutationID   string `json:"mutation_id"`
	OwnerID      string `json:"owner_id"`
	Year         any    `json:"year"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	MutationMark string `json:"mutation_mark"`
	FirstNumber  any    `json:"first_number"`
	LastNumber   any    `json:"last_number"`

	Periodicity []PeriodicityEntryDraft `json:"periodicity"`

	ShowAttachmentsAtTheEnd bool   `json:"show_attachments_at_the_end"`
	Note                    string `json:"note"`
}

// PeriodicityEntryDraft is the edit-buffer form of one periodicity entry.
type PeriodicityEntryDraft struct {
	Weekday       Weekday `json:"weekday"`
	Active        bool    `json:"active"`
	PublicationID string  `json:"publication_id"`
	PagesCount    any     `json:"pages_count"`
	Name          string  `json:"name"`
	SubName       string  `json:"sub_name"`
	IsAttachment  bool    `json:"is_attachment"`
}

// HasUnsetRange reports whether the informational number bounds are still at
// their sentinel values.
func (v *Volume) HasUnsetRange() bool {
	return v.FirstNumber == constants.UnsetNumber && v.LastNumber == constants.UnsetNumber
}

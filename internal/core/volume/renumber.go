// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

import (
	"strconv"

	"github.com/mzalesak/periodika/pkg/pointer"
)

// # Renumbering Engine

// Sequence selects which issue-number sequence a renumbering run operates
// on: the main sequence or the attachment sequence.
type Sequence string

const (
	SequenceNumber     Sequence = "number"
	SequenceAttachment Sequence = "attachment"
)

// Valid reports whether the value names a known sequence.
func (s Sequence) Valid() bool {
	return s == SequenceNumber || s == SequenceAttachment
}

// RenumberResult summarizes one renumbering run for confirmation messaging
// ("Count specimens renumbered from FirstNumber to LastNumber").
type RenumberResult struct {
	// Updated references the specimens whose number changed, in list order.
	Updated []*Specimen `json:"-"`

	FirstNumber int `json:"first_number"`
	LastNumber  int `json:"last_number"`
	Count       int `json:"count"`
}

/*
Renumber recomputes issue-sequence numbers forward from an anchor specimen.

After the cataloger inserts, deletes, or edits rows, the numbers downstream
of the edit point go stale; this recomputes them contiguously from that point
to the end of the list. The slice order is the chronological display order as
currently rendered — Renumber trusts it and never reorders.

Rules:

  - The running counter starts at the anchor's current number in the target
    sequence, parsed as an integer (0 when blank or unparseable).
  - Walking forward from the anchor index, every specimen that is present or
    tracked-missing AND belongs to the target sequence is assigned the
    counter value (string-encoded) and the counter advances.
  - Rows of the other sequence, and rows that neither exist nor are tracked
    as missing, are skipped over: their numbers are left untouched and they
    consume no counter value.
  - Rows before the anchor index are never touched.

An unknown anchor or an empty list is a no-op with a zero Count. Renumber
mutates the matched elements in place and performs no I/O; persisting the
result is a separate, explicit step.
*/
func Renumber(specimens []*Specimen, anchorID string, sequence Sequence) RenumberResult {
	result := RenumberResult{}

	anchorIndex := -1
	for i, s := range specimens {
		if s.ID == anchorID {
			anchorIndex = i
			break
		}
	}
	if anchorIndex < 0 {
		return result
	}

	counter := startingNumber(specimens[anchorIndex], sequence)

	for _, s := range specimens[anchorIndex:] {
		if !s.InSequence(sequence) {
			continue
		}

		if result.Count == 0 {
			result.FirstNumber = counter
		}
		result.LastNumber = counter

		assigned := pointer.To(strconv.Itoa(counter))
		if sequence == SequenceAttachment {
			s.AttachmentNumber = assigned
		} else {
			s.Number = assigned
		}

		result.Updated = append(result.Updated, s)
		result.Count++
		counter++
	}

	return result
}

// startingNumber parses the anchor's current number in the target sequence,
// defaulting to 0 when blank or unparseable.
func startingNumber(anchor *Specimen, sequence Sequence) int {
	raw := anchor.Number
	if sequence == SequenceAttachment {
		raw = anchor.AttachmentNumber
	}

	if raw == nil {
		return 0
	}

	n, err := strconv.Atoi(*raw)
	if err != nil {
		return 0
	}
	return n
}

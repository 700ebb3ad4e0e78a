// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzalesak/periodika/internal/core/volume"
	"github.com/mzalesak/periodika/pkg/pointer"
)

// mainSpecimen builds a present main-sequence specimen with the given number.
func mainSpecimen(id string, number int) *volume.Specimen {
	return &volume.Specimen{
		ID:        id,
		NumExists: true,
		Number:    pointer.To(strconv.Itoa(number)),
	}
}

func numbersOf(specimens []*volume.Specimen) []string {
	out := make([]string, 0, len(specimens))
	for _, s := range specimens {
		if s.Number == nil {
			out = append(out, "")
			continue
		}
		out = append(out, *s.Number)
	}
	return out
}

/*
TestRenumber_AlreadyContiguous replays the delete-then-renumber workflow:
after removing the row holding number 7 from [5,6,7,8,9], renumbering from
the row now at the edit point keeps the list as [5,6,8,9].
*/
func TestRenumber_AlreadyContiguous(t *testing.T) {
	specimens := []*volume.Specimen{
		mainSpecimen("s1", 5),
		mainSpecimen("s2", 6),
		mainSpecimen("s3", 8),
		mainSpecimen("s4", 9),
	}

	result := volume.Renumber(specimens, "s3", volume.SequenceNumber)

	assert.Equal(t, []string{"5", "6", "8", "9"}, numbersOf(specimens))
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 8, result.FirstNumber)
	assert.Equal(t, 9, result.LastNumber)
}

/*
TestRenumber_ForwardFromEditedAnchor verifies that a manually edited anchor
number propagates forward: [5,6,99,9] anchored at the 99 row becomes
[5,6,99,100].
*/
func TestRenumber_ForwardFromEditedAnchor(t *testing.T) {
	specimens := []*volume.Specimen{
		mainSpecimen("s1", 5),
		mainSpecimen("s2", 6),
		mainSpecimen("s3", 99),
		mainSpecimen("s4", 9),
	}

	result := volume.Renumber(specimens, "s3", volume.SequenceNumber)

	assert.Equal(t, []string{"5", "6", "99", "100"}, numbersOf(specimens))
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 99, result.FirstNumber)
	assert.Equal(t, 100, result.LastNumber)
}

/*
TestRenumber_Locality checks that rows before the anchor stay untouched even
when their numbers are not contiguous with the renumbered tail.
*/
func TestRenumber_Locality(t *testing.T) {
	specimens := []*volume.Specimen{
		mainSpecimen("s1", 40),
		mainSpecimen("s2", 2),
		mainSpecimen("s3", 10),
	}

	volume.Renumber(specimens, "s3", volume.SequenceNumber)

	assert.Equal(t, []string{"40", "2", "10"}, numbersOf(specimens))
}

/*
TestRenumber_SequenceIsolation renumbers the main sequence over a list with
alternating attachments and verifies attachments are skipped entirely: their
numbers stay unchanged and they consume no counter value.
*/
func TestRenumber_SequenceIsolation(t *testing.T) {
	attachment := func(id, attachmentNumber string) *volume.Specimen {
		return &volume.Specimen{
			ID:               id,
			NumExists:        true,
			IsAttachment:     true,
			AttachmentNumber: pointer.To(attachmentNumber),
		}
	}

	specimens := []*volume.Specimen{
		mainSpecimen("s1", 1),
		attachment("a1", "7"),
		mainSpecimen("s2", 5),
		attachment("a2", "8"),
		mainSpecimen("s3", 9),
	}

	result := volume.Renumber(specimens, "s1", volume.SequenceNumber)

	require.Equal(t, 3, result.Count)
	assert.Equal(t, []string{"1", "", "2", "", "3"}, numbersOf(specimens))

	// Attachment-sequence numbers on skipped rows are preserved.
	assert.Equal(t, "7", *specimens[1].AttachmentNumber)
	assert.Equal(t, "8", *specimens[3].AttachmentNumber)
	assert.Nil(t, specimens[1].Number)
	assert.Nil(t, specimens[3].Number)
}

/*
TestRenumber_SkipsUntrackedRows verifies rows that neither exist nor are
tracked as missing keep their numbers and consume no counter value.
*/
func TestRenumber_SkipsUntrackedRows(t *testing.T) {
	untracked := &volume.Specimen{ID: "u1", Number: pointer.To("77")}

	specimens := []*volume.Specimen{
		mainSpecimen("s1", 3),
		untracked,
		mainSpecimen("s2", 0),
	}

	result := volume.Renumber(specimens, "s1", volume.SequenceNumber)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, []string{"3", "77", "4"}, numbersOf(specimens))
}

/*
TestRenumber_MissingRowsCount verifies tracked-missing specimens participate
in the sequence just like present ones.
*/
func TestRenumber_MissingRowsCount(t *testing.T) {
	missing := &volume.Specimen{ID: "m1", NumMissing: true}

	specimens := []*volume.Specimen{
		mainSpecimen("s1", 10),
		missing,
		mainSpecimen("s2", 4),
	}

	result := volume.Renumber(specimens, "s1", volume.SequenceNumber)

	assert.Equal(t, 3, result.Count)
	assert.Equal(t, []string{"10", "11", "12"}, numbersOf(specimens))
}

/*
TestRenumber_NoOps covers the guard cases: unknown anchor and empty input
change nothing and report a zero count.
*/
func TestRenumber_NoOps(t *testing.T) {
	tests := []struct {
		name      string
		specimens []*volume.Specimen
	}{
		{"unknown_anchor", []*volume.Specimen{mainSpecimen("s1", 1)}},
		{"empty_list", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := volume.Renumber(tt.specimens, "nope", volume.SequenceNumber)

			assert.Zero(t, result.Count)
			assert.Empty(t, result.Updated)
		})
	}
}

/*
TestRenumber_BlankAnchorStartsAtZero verifies the counter defaults to 0 when
the anchor has no parseable number yet.
*/
func TestRenumber_BlankAnchorStartsAtZero(t *testing.T) {
	specimens := []*volume.Specimen{
		{ID: "s1", NumExists: true},
		{ID: "s2", NumExists: true},
	}

	result := volume.Renumber(specimens, "s1", volume.SequenceNumber)

	assert.Equal(t, []string{"0", "1"}, numbersOf(specimens))
	assert.Equal(t, 0, result.FirstNumber)
	assert.Equal(t, 1, result.LastNumber)
}

/*
TestRenumber_AttachmentSequence renumbers the attachment sequence and checks
main-sequence numbers are never modified.
*/
func TestRenumber_AttachmentSequence(t *testing.T) {
	specimens := []*volume.Specimen{
		{ID: "a1", NumExists: true, IsAttachment: true, AttachmentNumber: pointer.To("3")},
		mainSpecimen("s1", 12),
		{ID: "a2", NumExists: true, IsAttachment: true, AttachmentNumber: pointer.To("9")},
	}

	result := volume.Renumber(specimens, "a1", volume.SequenceAttachment)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "3", *specimens[0].AttachmentNumber)
	assert.Equal(t, "4", *specimens[2].AttachmentNumber)
	assert.Equal(t, "12", *specimens[1].Number)
	assert.Nil(t, specimens[1].AttachmentNumber)
}

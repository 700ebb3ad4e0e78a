// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package volume

// # Damage Types

// DamageType is an enumerated condition code describing a specimen's
// physical state.
type DamageType string

const (
	// DamageOK marks an intact specimen.
	DamageOK DamageType = "OK"
	// DamagePP marks damaged pages; DamagedPages lists them.
	DamagePP DamageType = "PP"
	// DamageDeg marks paper degradation.
	DamageDeg DamageType = "Deg"
	// DamageChS marks missing pages; MissingPages lists them.
	DamageChS DamageType = "ChS"
	// DamageChPP marks a missing printed part.
	DamageChPP DamageType = "ChPP"
	// DamageChDatum marks a wrong or missing issue date.
	DamageChDatum DamageType = "ChDatum"
	// DamageChCis marks wrong or missing issue numbering.
	DamageChCis DamageType = "ChCis"
	// DamageChSv marks a missing bound attachment.
	DamageChSv DamageType = "ChSv"
	// DamageCz marks censorship intervention.
	DamageCz DamageType = "Cz"
	// DamageNS marks an issue that was never published.
	DamageNS DamageType = "NS"
)

// DamageTypes returns all known condition codes in canonical display order.
func DamageTypes() []DamageType {
	return []DamageType{
		DamageOK, DamagePP, DamageDeg, DamageChS, DamageChPP,
		DamageChDatum, DamageChCis, DamageChSv, DamageCz, DamageNS,
	}
}

// Valid reports whether the code is a known damage type.
func (d DamageType) Valid() bool {
	for _, known := range DamageTypes() {
		if d == known {
			return true
		}
	}
	return false
}

// # Specimen

// Specimen represents one physical copy of one issue of a periodical.
//
// NumExists and NumMissing are mutually exclusive: a repaired specimen is
// never simultaneously "present" and "known to be missing".
type Specimen struct {
	ID            string `json:"id"`
	VolumeID      string `json:"volume_id"`
	MetaTitleID   string `json:"meta_title_id"`
	OwnerID       string `json:"owner_id"`
	PublicationID string `json:"publication_id"`
	MutationID    string `json:"mutation_id"`
	BarCode       string `json:"bar_code"`

	// Existence flags.
	NumExists  bool `json:"num_exists"`
	NumMissing bool `json:"num_missing"`

	// Sequence fields. Numbers are string-encoded integers; nil means the
	// specimen has no number in that sequence. IsAttachment selects which
	// sequence the specimen participates in.
	Number           *string `json:"number"`
	AttachmentNumber *string `json:"attachment_number"`
	IsAttachment     bool    `json:"is_attachment"`

	Name         string `json:"name"`
	SubName      string `json:"sub_name"`
	MutationMark string `json:"mutation_mark"`

	// PublicationDate is the ISO calendar date of the issue;
	// PublicationDateString is its display form.
	PublicationDate       string `json:"publication_date"`
	PublicationDateString string `json:"publication_date_string"`

	PagesCount int    `json:"pages_count"`
	Note       string `json:"note"`

	DamageTypes  []DamageType `json:"damage_types"`
	DamagedPages []int        `json:"damaged_pages"`
	MissingPages []int        `json:"missing_pages"`

	// Duplicated marks a row created by the duplicate action in the current
	// draft. Only duplicated rows may be deleted from a draft; the flag is
	// never persisted.
	Duplicated bool `json:"duplicated,omitempty"`
}

// InSequence reports whether the specimen participates in the given
// numbering sequence and counts toward renumbering (it must be physically
// present or tracked as missing).
func (s *Specimen) InSequence(sequence Sequence) bool {
	if !s.NumExists && !s.NumMissing {
		return false
	}

	if sequence == SequenceAttachment {
		return s.IsAttachment
	}
	return !s.IsAttachment
}

// HasDamage reports whether the specimen carries the given condition code.
func (s *Specimen) HasDamage(code DamageType) bool {
	for _, d := range s.DamageTypes {
		if d == code {
			return true
		}
	}
	return false
}

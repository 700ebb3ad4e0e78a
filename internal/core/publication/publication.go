// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

// Package publication manages the publication reference list: named
// publication run configurations a specimen or periodicity entry points at
// (morning edition, evening edition, supplement, ...).
package publication

import "time"

// Publication represents one named publication run configuration.
type Publication struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// IsDefault marks the publication that seeds periodicity entries with
	// no publication selected. At most one row carries it.
	IsDefault bool `json:"is_default"`

	// IsAttachment marks runs that are attachments to a main issue.
	IsAttachment bool `json:"is_attachment"`

	CreatedAt time.Time `json:"-"`
}

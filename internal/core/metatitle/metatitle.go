// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

/*
Package metatitle defines the top-level title entity of the Periodika
catalogue.

A meta title groups every volume and specimen published under one
periodical name, across mutations and owners. Titles can be hidden from
anonymous readers while the archive record is still being completed.
*/
package metatitle

import "time"

// MetaTitle represents one periodical title in the catalogue.
type MetaTitle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Overview is the list-view projection of a meta title, enriched with
// aggregate statistics computed from its catalogued specimens.
type Overview struct {
	MetaTitle
	VolumeCount   int     `json:"volume_count"`
	SpecimenCount int     `json:"specimen_count"`
	CoveredFrom   *string `json:"covered_from"`
	CoveredTo     *string `json:"covered_to"`
}

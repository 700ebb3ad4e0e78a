// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

/*
Package specimen implements the read side of the catalogue: faceted
specimen search for the table view and per-day grouping for the calendar
view.

Editing specimens happens through the volume aggregate; this package only
queries.
*/
package specimen

import "github.com/mzalesak/periodika/internal/core/volume"

// # Views

// View selects the overview presentation a list request feeds.
type View string

const (
	ViewTable    View = "table"
	ViewCalendar View = "calendar"
)

// Valid reports whether the value names a known view.
func (v View) Valid() bool {
	return v == ViewTable || v == ViewCalendar
}

// Filter is the facet-driven specimen filter. Empty fields do not
// constrain the result; list fields match any of their values.
type Filter struct {
	MetaTitleID    string   `json:"meta_title_id"`
	VolumeID       string   `json:"volume_id"`
	Year           *int     `json:"year"`
	DateFrom       string   `json:"date_from"`
	DateTo         string   `json:"date_to"`
	Names          []string `json:"names"`
	MutationIDs    []string `json:"mutations"`
	PublicationIDs []string `json:"publications"`
	MutationMarks  []string `json:"mutation_marks"`
	OwnerIDs       []string `json:"owners"`
	DamageTypes    []string `json:"damage_types"`
}

// FacetValue is one selectable filter value with its hit count under the
// active filter.
type FacetValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets holds the value/count pairs the overview filter panels render.
type Facets struct {
	Names         []FacetValue `json:"names"`
	Mutations     []FacetValue `json:"mutations"`
	Publications  []FacetValue `json:"publications"`
	MutationMarks []FacetValue `json:"mutation_marks"`
	Owners        []FacetValue `json:"owners"`
	DamageTypes   []FacetValue `json:"damage_types"`
}

// ListResult is one page of the specimen table plus the facet counts under
// the same filter.
type ListResult struct {
	Items  []*volume.Specimen `json:"items"`
	Total  int                `json:"total"`
	Facets *Facets            `json:"facets"`
}

// CalendarDay groups the specimens issued on one calendar date.
type CalendarDay struct {
	Date      string             `json:"date"`
	Specimens []*volume.Specimen `json:"specimens"`
}

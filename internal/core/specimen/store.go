// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package specimen

import (
	"context"

	"github.com/mzalesak/periodika/internal/core/volume"
)

// Repository defines the read-side data access contract.
type Repository interface {
	// List returns one chronological page of specimens matching the
	// filter, plus the total match count.
	List(context context.Context, filter Filter, offset, rows int) ([]*volume.Specimen, int, error)

	// Facets computes value/count pairs for every facet under the filter.
	Facets(context context.Context, filter Filter) (*Facets, error)

	// ListYear returns all of a title's specimens issued in one year,
	// chronologically, for calendar rendering.
	ListYear(context context.Context, metaTitleID string, year int, filter Filter) ([]*volume.Specimen, error)
}

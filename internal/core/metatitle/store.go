// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

package metatitle

import "context"

// Repository defines the data access contract for meta titles.
type Repository interface {
	// ListOverviews returns one page of titles with aggregate statistics
	// plus the total row count, restricted to public titles when
	// publicOnly is set.
	ListOverviews(context context.Context, publicOnly bool, limit, offset int) ([]*Overview, int, error)

	GetByID(context context.Context, id string) (*MetaTitle, error)
	Create(context context.Context, title *MetaTitle) error
	Update(context context.Context, title *MetaTitle) error
	Delete(context context.Context, id string) error
}

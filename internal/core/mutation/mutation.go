package mutation

import "time"

// Mutation represents a regional or language edition variant of a meta title.
type Mutation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"-"`
}

package owner

import "time"

// Owner represents an institution holding physical specimens. The sigla is
// the library-location shortcut that prefixes specimen bar codes.
type Owner struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sigla     string    `json:"sigla"`
	CreatedAt time.Time `json:"-"`
}

package schema

// CatalogOwnerTable represents the 'catalog.owner' table
type CatalogOwnerTable struct {
	Table     string
	ID        string
	Name      string
	Sigla     string
	CreatedAt string
}

// CatalogOwner is the schema definition for catalog.owner.
// Sigla is the library-location shortcut used on specimen bar codes.
var CatalogOwner = CatalogOwnerTable{
	Table:     "catalog.owner",
	ID:        "id",
	Name:      "name",
	Sigla:     "sigla",
	CreatedAt: "createdat",
}

func (t CatalogOwnerTable) Columns() []string {
	return []string{t.ID, t.Name, t.Sigla, t.CreatedAt}
}

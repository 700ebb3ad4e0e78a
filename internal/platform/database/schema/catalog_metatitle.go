package schema

// CatalogMetaTitleTable represents the 'catalog.metatitle' table
type CatalogMetaTitleTable struct {
	Table     string
	ID        string
	Name      string
	Note      string
	IsPublic  string
	CreatedAt string
	UpdatedAt string
}

// CatalogMetaTitle is the schema definition for catalog.metatitle
var CatalogMetaTitle = CatalogMetaTitleTable{
	Table:     "catalog.metatitle",
	ID:        "id",
	Name:      "name",
	Note:      "note",
	IsPublic:  "ispublic",
	CreatedAt: "createdat",
	UpdatedAt: "updatedat",
}

func (t CatalogMetaTitleTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Note, t.IsPublic, t.CreatedAt, t.UpdatedAt,
	}
}

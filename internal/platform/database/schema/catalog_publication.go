package schema

// CatalogPublicationTable represents the 'catalog.publication' table
type CatalogPublicationTable struct {
	Table        string
	ID           string
	Name         string
	IsDefault    string
	IsAttachment string
	CreatedAt    string
}

// CatalogPublication is the schema definition for catalog.publication.
// Exactly one row is expected to carry isdefault = true; it seeds
// periodicity entries that have no publication selected.
var CatalogPublication = CatalogPublicationTable{
	Table:        "catalog.publication",
	ID:           "id",
	Name:         "name",
	IsDefault:    "isdefault",
	IsAttachment: "isattachment",
	CreatedAt:    "createdat",
}

func (t CatalogPublicationTable) Columns() []string {
	return []string{t.ID, t.Name, t.IsDefault, t.IsAttachment, t.CreatedAt}
}

package schema

// CatalogMutationTable represents the 'catalog.mutation' table
type CatalogMutationTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// CatalogMutation is the schema definition for catalog.mutation
var CatalogMutation = CatalogMutationTable{
	Table:     "catalog.mutation",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CatalogMutationTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}

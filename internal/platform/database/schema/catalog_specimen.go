package schema

// CatalogSpecimenTable represents the 'catalog.specimen' table
type CatalogSpecimenTable struct {
	Table                 string
	ID                    string
	VolumeID              string
	MetaTitleID           string
	OwnerID               string
	PublicationID         string
	MutationID            string
	BarCode               string
	NumExists             string
	NumMissing            string
	Number                string
	AttachmentNumber      string
	IsAttachment          string
	Name                  string
	SubName               string
	MutationMark          string
	PublicationDate       string
	PublicationDateString string
	PagesCount            string
	Note                  string
	DamageTypes           string
	DamagedPages          string
	MissingPages          string
	CreatedAt             string
	UpdatedAt             string
}

// CatalogSpecimen is the schema definition for catalog.specimen.
// DamageTypes is a text[] column; DamagedPages and MissingPages are int[].
var CatalogSpecimen = CatalogSpecimenTable{
	Table:                 "catalog.specimen",
	ID:                    "id",
	VolumeID:              "volumeid",
	MetaTitleID:           "metatitleid",
	OwnerID:               "ownerid",
	PublicationID:         "publicationid",
	MutationID:            "mutationid",
	BarCode:               "barcode",
	NumExists:             "numexists",
	NumMissing:            "nummissing",
	Number:                "number",
	AttachmentNumber:      "attachmentnumber",
	IsAttachment:          "isattachment",
	Name:                  "name",
	SubName:               "subname",
	MutationMark:          "mutationmark",
	PublicationDate:       "publicationdate",
	PublicationDateString: "publicationdatestring",
	PagesCount:            "pagescount",
	Note:                  "note",
	DamageTypes:           "damagetypes",
	DamagedPages:          "damagedpages",
	MissingPages:          "missingpages",
	CreatedAt:             "createdat",
	UpdatedAt:             "updatedat",
}

func (t CatalogSpecimenTable) Columns() []string {
	return []string{
		t.ID, t.VolumeID, t.MetaTitleID, t.OwnerID, t.PublicationID, t.MutationID,
		t.BarCode, t.NumExists, t.NumMissing, t.Number, t.AttachmentNumber, t.IsAttachment,
		t.Name, t.SubName, t.MutationMark, t.PublicationDate, t.PublicationDateString,
		t.PagesCount, t.Note, t.DamageTypes, t.DamagedPages, t.MissingPages,
		t.CreatedAt, t.UpdatedAt,
	}
}

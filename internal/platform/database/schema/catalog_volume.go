package schema

// CatalogVolumeTable represents the 'catalog.volume' table
type CatalogVolumeTable struct {
	Table                   string
	ID                      string
	BarCode                 string
	Signature               string
	MetaTitleID             string
	MutationID              string
	OwnerID                 string
	Year                    string
	DateFrom                string
	DateTo                  string
	MutationMark            string
	FirstNumber             string
	LastNumber              string
	Periodicity             string
	ShowAttachmentsAtTheEnd string
	Note                    string
	CreatedAt               string
	UpdatedAt               string
}

// CatalogVolume is the schema definition for catalog.volume.
// Periodicity is a JSONB column holding the 7-entry weekly template.
var CatalogVolume = CatalogVolumeTable{
	Table:                   "catalog.volume",
	ID:                      "id",
	BarCode:                 "barcode",
	Signature:               "signature",
	MetaTitleID:             "metatitleid",
	MutationID:              "mutationid",
	OwnerID:                 "ownerid",
	Year:                    "year",
	DateFrom:                "datefrom",
	DateTo:                  "dateto",
	MutationMark:            "mutationmark",
	FirstNumber:             "firstnumber",
	LastNumber:              "lastnumber",
	Periodicity:             "periodicity",
	ShowAttachmentsAtTheEnd: "showattachmentsattheend",
	Note:                    "note",
	CreatedAt:               "createdat",
	UpdatedAt:               "updatedat",
}

func (t CatalogVolumeTable) Columns() []string {
	return []string{
		t.ID, t.BarCode, t.Signature, t.MetaTitleID, t.MutationID, t.OwnerID, t.Year,
		t.DateFrom, t.DateTo, t.MutationMark, t.FirstNumber, t.LastNumber,
		t.Periodicity, t.ShowAttachmentsAtTheEnd, t.Note, t.CreatedAt, t.UpdatedAt,
	}
}

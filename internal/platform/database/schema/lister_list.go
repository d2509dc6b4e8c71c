package schema

// ListerListTable represents the 'lister.list' table
type ListerListTable struct {
	Table      string
	ID         string
	UserID     string
	CategoryID string
	SubGenreID string
	Year       string
	Title      string
	CreatedAt  string
	UpdatedAt  string
}

// ListerList is the schema definition for lister.list
var ListerList = ListerListTable{
	Table:      "lister.list",
	ID:         "id",
	UserID:     "userid",
	CategoryID: "categoryid",
	SubGenreID: "subgenreid",
	Year:       "year",
	Title:      "title",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// Columns returns all standard column names
func (t ListerListTable) Columns() []string {
	return []string{t.ID, t.UserID, t.CategoryID, t.SubGenreID, t.Year, t.Title, t.CreatedAt, t.UpdatedAt}
}

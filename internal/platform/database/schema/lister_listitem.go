package schema

// ListerListItemTable represents the 'lister.listitem' table
type ListerListItemTable struct {
	Table       string
	ID          string
	ListID      string
	Title       string
	Description string
	ImageURL    string
	Position    string
	CreatedAt   string
	UpdatedAt   string
}

// ListerListItem is the schema definition for lister.listitem
var ListerListItem = ListerListItemTable{
	Table:       "lister.listitem",
	ID:          "id",
	ListID:      "listid",
	Title:       "title",
	Description: "description",
	ImageURL:    "imageurl",
	Position:    "position",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
}

// Columns returns all standard column names
func (t ListerListItemTable) Columns() []string {
	return []string{t.ID, t.ListID, t.Title, t.Description, t.ImageURL, t.Position, t.CreatedAt, t.UpdatedAt}
}

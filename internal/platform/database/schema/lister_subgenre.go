package schema

// ListerSubGenreTable represents the 'lister.subgenre' table
type ListerSubGenreTable struct {
	Table       string
	ID          string
	CategoryID  string
	Name        string
	DisplayName string
	Icon        string
	SortOrder   string
}

// ListerSubGenre is the schema definition for lister.subgenre
var ListerSubGenre = ListerSubGenreTable{
	Table:       "lister.subgenre",
	ID:          "id",
	CategoryID:  "categoryid",
	Name:        "name",
	DisplayName: "displayname",
	Icon:        "icon",
	SortOrder:   "sortorder",
}

func (t ListerSubGenreTable) Columns() []string {
	return []string{t.ID, t.CategoryID, t.Name, t.DisplayName, t.Icon, t.SortOrder}
}

package schema

// ListerCategoryTable represents the 'lister.category' table
type ListerCategoryTable struct {
	Table       string
	ID          string
	Name        string
	DisplayName string
	Description string
	Icon        string
	SortOrder   string
}

// ListerCategory is the schema definition for lister.category
var ListerCategory = ListerCategoryTable{
	Table:       "lister.category",
	ID:          "id",
	Name:        "name",
	DisplayName: "displayname",
	Description: "description",
	Icon:        "icon",
	SortOrder:   "sortorder",
}

func (t ListerCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.DisplayName, t.Description, t.Icon, t.SortOrder}
}

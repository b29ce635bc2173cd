package entities

// Building is a city/site offered by the service. Identity is Id; the UI
// selects buildings by Name.
type Building struct {
	Id        string  `json:"id"`
	Name      string  `json:"name"`
	CompanyId string  `json:"companyId"`
	Floors    []Floor `json:"floors"`
}

type Floor struct {
	Name      string      `json:"name"`
	Level     int         `json:"level"`
	Workspace []Workspace `json:"workspace"`
}

type Workspace struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	CompanyId string `json:"companyId"`
	Seats     []Seat `json:"seats"`
}

type Seat struct {
	Id                   string         `json:"id"`
	EntityType           string         `json:"entityType"`
	CreatedAt            string         `json:"createdAt"`
	UpdatedAt            string         `json:"updatedAt"`
	DisabledAt           string         `json:"disabledAt"`
	Name                 string         `json:"name"`
	Fullname             string         `json:"fullname"`
	Position             int            `json:"position"`
	Status               string         `json:"status"`
	MapInformation       MapInformation `json:"mapInformation"`
	AllowRecurringEvents bool           `json:"allowRecurringEvents"`
	Favorite             bool           `json:"favorite"`
	HasServices          bool           `json:"hasServices"`
}

type MapInformation struct {
	Id       string `json:"id"`
	Provider string `json:"provider"`
	Type     string `json:"type"`
	PlaceId  string `json:"placeId"`
}

// Workspaces flattens the workspaces across all floors of the building.
func (b *Building) Workspaces() []Workspace {
	var workspaces []Workspace
	for _, floor := range b.Floors {
		workspaces = append(workspaces, floor.Workspace...)
	}
	return workspaces
}

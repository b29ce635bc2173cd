package entities

import "encoding/json"

// Wire shapes of the API responses. Only the fields the workflow reads are
// declared; everything else is dropped on decode.

type SignInResponse struct {
	Token string `json:"token"`
}

type CompanyRef struct {
	Id string `json:"id"`
}

// BuildingItem is one element of the users/buildings array.
type BuildingItem struct {
	Id      string     `json:"id"`
	Name    string     `json:"name"`
	Company CompanyRef `json:"company"`
}

// BuildingDetail is the buildings/{id} body, adding the floors.
type BuildingDetail struct {
	Id      string     `json:"id"`
	Name    string     `json:"name"`
	Company CompanyRef `json:"company"`
	Floors  []struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	} `json:"floors"`
}

// AvailabilityItem is one element of the workspaces/availabilities array:
// a bookable workspace with its seats nested under "workspace".
type AvailabilityItem struct {
	Id        string `json:"id"`
	Workspace struct {
		Title string `json:"title"`
		Seats []Seat `json:"seats"`
	} `json:"workspace"`
}

// OrderResult is the outcome of an order submission. A non-2xx status is a
// business rejection, not a transport failure: the server's body is kept
// verbatim so the caller can render it.
type OrderResult struct {
	StatusCode int
	Body       json.RawMessage
}

func (r *OrderResult) Accepted() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

package entities

// Order is the reservation request wired to orders/add. Field names and the
// nulls for unset optionals must match what the server already accepts; do not
// add omitempty to the nullable fields.
type Order struct {
	Company  Id        `json:"company"`
	TimeZone string    `json:"timeZone"`
	Coupon   *string   `json:"coupon"`
	Bookings []Booking `json:"bookings"`
	Origin   string    `json:"origin"`
}

// Booking carries the workspace reference twice, wrapped and raw; the server
// reads both.
type Booking struct {
	Id               *string `json:"id"`
	Workspace        Id      `json:"workspace"`
	WorkspaceId      string  `json:"workspaceId"`
	Start            string  `json:"start"`
	End              string  `json:"end"`
	Places           int     `json:"places"`
	IsMonthlyBooking bool    `json:"isMonthlyBooking"`
	Coupon           *string `json:"coupon"`
	Period           string  `json:"period"`
	BookedSeats      []Seat  `json:"bookedSeats"`
	Days             []Day   `json:"days"`
	BookNextToInfo   Id      `json:"bookNextToInfo"`
	Rrule            *string `json:"rrule"`
}

type Id struct {
	Id *string `json:"id"`
}

type Day struct {
	Day    string `json:"day"`
	Date   string `json:"date"`
	Period string `json:"period"`
}

// NewId wraps a raw identifier; NewId("") yields the empty sentinel {id:null}.
func NewId(id string) Id {
	if id == "" {
		return Id{}
	}
	return Id{Id: &id}
}

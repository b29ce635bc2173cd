package constant

const (
	BASE_URL = "https://api.moffi.io/api/"

	SIGNIN_PATH         = "signin"
	BUILDINGS_PATH      = "users/buildings"
	BUILDING_PATH       = "buildings"
	AVAILABILITIES_PATH = "workspaces/availabilities"
	ORDER_PATH          = "orders/add"

	// Availability query defaults
	PLACES = "1"
	PERIOD = "DAY"

	// Wire formats. The booking start/end suffixes are fixed business hours
	// baked into a UTC-suffixed string, not a real timezone conversion; the
	// server expects them verbatim.
	DAY_FORMAT          = "2006-01-02"
	AVAILABILITY_FORMAT = "2006-01-02 15:04:05.000"
	DAY_START_SUFFIX    = "T05:30:00.000Z"
	DAY_END_SUFFIX      = "T20:00:00.000Z"

	TIMEZONE     = "Europe/Paris"
	ORDER_ORIGIN = "WIDGET"

	CAPTCHA_NOT_PROVIDED = "NOT_PROVIDED"
)

package order

import (
	"time"

	"github.com/paologalligit/moffi-booker/constant"
	"github.com/paologalligit/moffi-booker/entities"
)

// Build assembles the wire-format reservation request for one workspace, one
// seat and one date range. It is pure: the same inputs always produce the
// same Order. The timezone and the 05:30/20:00 suffixes are fixed business
// rules of the remote service, not computed values.
func Build(workspace entities.Workspace, seat entities.Seat, dateRange entities.DateRange) entities.Order {
	start := DayStart(dateRange.Start)
	end := DayEnd(dateRange.Start)
	if dateRange.End != nil {
		end = DayEnd(*dateRange.End)
	}
	return entities.Order{
		Company:  entities.NewId(workspace.CompanyId),
		TimeZone: constant.TIMEZONE,
		Origin:   constant.ORDER_ORIGIN,
		Bookings: []entities.Booking{
			{
				Workspace:   entities.NewId(workspace.Id),
				WorkspaceId: workspace.Id,
				Start:       start,
				End:         end,
				Places:      1,
				Period:      constant.PERIOD,
				BookedSeats: []entities.Seat{seat},
				Days: []entities.Day{
					{
						Day:    DayDate(dateRange.Start),
						Date:   start,
						Period: constant.PERIOD,
					},
				},
			},
		},
	}
}

// DayDate is the UTC calendar date of the instant.
func DayDate(t time.Time) string {
	return t.UTC().Format(constant.DAY_FORMAT)
}

// DayStart and DayEnd append the fixed business-hour suffixes; they are not a
// timezone conversion and must stay byte-compatible with the server.
func DayStart(t time.Time) string {
	return DayDate(t) + constant.DAY_START_SUFFIX
}

func DayEnd(t time.Time) string {
	return DayDate(t) + constant.DAY_END_SUFFIX
}

// FromMillis converts an epoch-millisecond date-picker value.
func FromMillis(millis int64) time.Time {
	return time.UnixMilli(millis).UTC()
}

package pricing

import (
	"time"
)

// DayType is the categorical classification of a calendar date.
type DayType string

const (
	// DayTypeThuSat is the Thursday through Saturday operating mode.
	DayTypeThuSat DayType = "thu_sat"
	// DayTypeSunWed is the Sunday through Wednesday operating mode.
	DayTypeSunWed DayType = "sun_wed"
)

// ClassifyDayType returns thu_sat when the date's weekday index
// (0=Sunday..6=Saturday) is a member of the configured thu_sat set, and
// sun_wed otherwise. There is no third category.
func ClassifyDayType(defs DayTypeDefinitions, date time.Time) DayType {
	weekday := int(date.Weekday())

	for _, d := range defs.ThuSat.Days {
		if d == weekday {
			return DayTypeThuSat
		}
	}

	return DayTypeSunWed
}

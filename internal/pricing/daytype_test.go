package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDayType(t *testing.T) {
	defs := DayTypeDefinitions{
		ThuSat: DayTypeRule{Days: []int{4, 5, 6}},
	}

	// 2026-08-23 is a Sunday; walk one full week from there.
	sunday := time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

	wantByWeekday := map[time.Weekday]DayType{
		time.Sunday:    DayTypeSunWed,
		time.Monday:    DayTypeSunWed,
		time.Tuesday:   DayTypeSunWed,
		time.Wednesday: DayTypeSunWed,
		time.Thursday:  DayTypeThuSat,
		time.Friday:    DayTypeThuSat,
		time.Saturday:  DayTypeThuSat,
	}

	for offset := 0; offset < 7; offset++ {
		date := sunday.AddDate(0, 0, offset)

		got := ClassifyDayType(defs, date)
		assert.Equal(t, wantByWeekday[date.Weekday()], got, "weekday %s", date.Weekday())
	}
}

func TestClassifyDayTypeEmptyDefinitions(t *testing.T) {
	// with no configured thu_sat days everything is sun_wed
	defs := DayTypeDefinitions{}

	saturday := time.Date(2026, time.August, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, DayTypeSunWed, ClassifyDayType(defs, saturday))
}

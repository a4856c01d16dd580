package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// DateKeyLayout is the zero-padded layout of holiday index keys
const DateKeyLayout = "2006-01-02"

// DaysInMonth returns the number of days of a zero-based month. Day zero of
// the following month normalizes to the last day of this one.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 12, 0, 0, 0, time.UTC).Day()
}

// WeekdayOf returns the Sunday-first weekday (0 = Sunday) of a date with a
// zero-based month.
func WeekdayOf(year, month, day int) int {
	return int(time.Date(year, time.Month(month+1), day, 12, 0, 0, 0, time.UTC).Weekday())
}

// MondayFirstWeekday remaps a Sunday-first weekday index to a Monday-first
// one, so that Sunday lands in the last grid column.
func MondayFirstWeekday(native int) int {
	return (native + 6) % 7
}

// IsSameCalendarDate reports whether a and b fall on the same year, month
// and day. Time of day is ignored; both values are compared in their own
// location.
func IsSameCalendarDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FormatDateKey formats a date as YYYY-MM-DD. month is one-based.
func FormatDateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

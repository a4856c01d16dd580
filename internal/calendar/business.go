package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
)

// BusinessCalendar returns a Monday to Friday calendar in which the
// configured holidays are public observances. The list only holds for the
// configured year, so each holiday is limited to it.
func (c Config) BusinessCalendar() *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()
	for _, h := range c.Holidays {
		bc.AddHoliday(&cal.Holiday{
			Name:      h.Name,
			Type:      cal.ObservancePublic,
			Month:     time.Month(h.Month + 1),
			Day:       h.Day,
			StartYear: c.Year,
			EndYear:   c.Year,
			Func:      cal.CalcDayOfMonth,
		})
	}
	return bc
}

// Workdays returns the number of working days per month of the configured
// year, indexed by zero-based month.
func (c Config) Workdays() [12]int {
	bc := c.BusinessCalendar()

	var out [12]int
	for m := range out {
		out[m] = bc.WorkdaysInMonth(c.Year, time.Month(m+1))
	}
	return out
}

package calendar

import (
	"time"
)

// MonthPanel opens the grid of one month.
type MonthPanel struct {
	Month     int    // zero-based
	Title     string // "Enero 2025"
	GridLabel string // "Días de Enero 2025"
	Offset    int    // leading blank cells
	DayCount  int
}

// WeekdayHeader is one column label of a month grid.
type WeekdayHeader struct {
	Column int // 0 = Monday
	Label  string
}

// BlankCell fills a grid slot before day 1.
type BlankCell struct {
	Column int
}

// DayCell is the view model of a single calendar day.
type DayCell struct {
	Date        time.Time
	Day         int
	Key         string // YYYY-MM-DD, also used as <time datetime>
	Column      int
	IsToday     bool
	HolidayName string
	Tooltip     string
	AriaLabel   string
}

// IsHoliday reports whether the cell carries a holiday annotation.
func (c DayCell) IsHoliday() bool {
	return c.HolidayName != ""
}

// Builder receives the calendar nodes in visual order: for every month
// BeginMonth, seven WeekdayHeader calls, the blanks, the days, EndMonth.
type Builder interface {
	BeginMonth(panel MonthPanel)
	WeekdayHeader(header WeekdayHeader)
	Blank(cell BlankCell)
	Day(cell DayCell)
	EndMonth()
}

// Render lays out the twelve months of cfg.Year into b. now marks today's
// cell, and only when it falls in the configured year.
func Render(cfg Config, now time.Time, b Builder) {
	holidays := BuildHolidayIndex(cfg.Year, cfg.Holidays)
	loc := cfg.location()
	today := now.In(loc)
	markToday := today.Year() == cfg.Year

	for month := 0; month < 12; month++ {
		offset := MondayFirstWeekday(WeekdayOf(cfg.Year, month, 1))
		total := DaysInMonth(cfg.Year, month)
		title := cfg.MonthTitle(month)

		b.BeginMonth(MonthPanel{
			Month:     month,
			Title:     title,
			GridLabel: "Días de " + title,
			Offset:    offset,
			DayCount:  total,
		})

		for col, label := range cfg.WeekdayNames {
			b.WeekdayHeader(WeekdayHeader{Column: col, Label: label})
		}

		for i := 0; i < offset; i++ {
			b.Blank(BlankCell{Column: i})
		}

		for day := 1; day <= total; day++ {
			date := time.Date(cfg.Year, time.Month(month+1), day, 0, 0, 0, 0, loc)
			key := FormatDateKey(cfg.Year, month+1, day)

			cell := DayCell{
				Date:    date,
				Day:     day,
				Key:     key,
				Column:  (offset + day - 1) % 7,
				IsToday: markToday && IsSameCalendarDate(date, today),
			}

			dayLabel := itoa(day) + " de " + cfg.MonthName(month)
			if name, ok := holidays.Lookup(key); ok {
				cell.HolidayName = name
				cell.Tooltip = name + " — " + pad2(day) + "/" + pad2(month+1)
				cell.AriaLabel = dayLabel + ": " + name
			} else {
				cell.AriaLabel = dayLabel
			}

			b.Day(cell)
		}

		b.EndMonth()
	}
}

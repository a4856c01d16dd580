package calendar

import (
	"time"
)

// Month is a finished month panel with its cells in visual order.
type Month struct {
	MonthPanel
	Headers []WeekdayHeader
	Blanks  []BlankCell
	Days    []DayCell
}

// Year is the rendered tree for the configured year.
type Year struct {
	Year   int
	Months []Month
}

// TodayCount returns how many cells carry the today marker.
func (y *Year) TodayCount() int {
	n := 0
	for _, m := range y.Months {
		for _, d := range m.Days {
			if d.IsToday {
				n++
			}
		}
	}
	return n
}

// TreeBuilder collects the nodes emitted by Render into a Year.
type TreeBuilder struct {
	year    Year
	current *Month
}

// NewTreeBuilder returns an empty builder for the given year.
func NewTreeBuilder(year int) *TreeBuilder {
	return &TreeBuilder{year: Year{Year: year, Months: make([]Month, 0, 12)}}
}

func (t *TreeBuilder) BeginMonth(panel MonthPanel) {
	t.current = &Month{
		MonthPanel: panel,
		Headers:    make([]WeekdayHeader, 0, 7),
		Blanks:     make([]BlankCell, 0, panel.Offset),
		Days:       make([]DayCell, 0, panel.DayCount),
	}
}

func (t *TreeBuilder) WeekdayHeader(header WeekdayHeader) {
	t.current.Headers = append(t.current.Headers, header)
}

func (t *TreeBuilder) Blank(cell BlankCell) {
	t.current.Blanks = append(t.current.Blanks, cell)
}

func (t *TreeBuilder) Day(cell DayCell) {
	t.current.Days = append(t.current.Days, cell)
}

func (t *TreeBuilder) EndMonth() {
	t.year.Months = append(t.year.Months, *t.current)
	t.current = nil
}

// Year returns the collected tree.
func (t *TreeBuilder) Year() *Year {
	return &t.year
}

// Build renders cfg into a fresh tree.
func Build(cfg Config, now time.Time) *Year {
	tb := NewTreeBuilder(cfg.Year)
	Render(cfg, now, tb)
	return tb.Year()
}

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
	"github.com/klabast/wb-services/feriados-kalender/internal/theme"
)

const (
	cellWidth  = 3
	monthWidth = 7 * cellWidth
	monthGap   = 3
)

// palette holds the terminal colors of one theme mode
type palette struct {
	Title   string
	Weekday string
	Day     string
	Holiday string
	TodayFG string
	TodayBG string
	Border  string
}

var palettes = map[theme.Mode]palette{
	theme.Light: {Title: "#0B1F3A", Weekday: "#8A8A8E", Day: "#1D1D1F", Holiday: "#C92035", TodayFG: "#FFFFFF", TodayBG: "#0F345E", Border: "#8F8F8F"},
	theme.Dark:  {Title: "#EAF1FB", Weekday: "#8F8F8F", Day: "#F2F2F2", Holiday: "#F28A94", TodayFG: "#111111", TodayBG: "#D4AF37", Border: "#2A4C74"},
}

// TextRenderer prints a rendered year to a terminal.
type TextRenderer struct {
	renderer *lipgloss.Renderer
	width    int

	title   lipgloss.Style
	weekday lipgloss.Style
	day     lipgloss.Style
	holiday lipgloss.Style
	today   lipgloss.Style
	panel   lipgloss.Style
}

// NewTextRenderer builds styles for mode. width is the available terminal
// width; months are laid out side by side as far as it allows.
func NewTextRenderer(out io.Writer, mode theme.Mode, width int) *TextRenderer {
	r := lipgloss.NewRenderer(out)
	r.SetHasDarkBackground(mode == theme.Dark)
	p := palettes[mode]

	return &TextRenderer{
		renderer: r,
		width:    width,
		title:    r.NewStyle().Width(monthWidth).Align(lipgloss.Center).Bold(true).Foreground(lipgloss.Color(p.Title)),
		weekday:  r.NewStyle().Foreground(lipgloss.Color(p.Weekday)),
		day:      r.NewStyle().Foreground(lipgloss.Color(p.Day)),
		holiday:  r.NewStyle().Foreground(lipgloss.Color(p.Holiday)).Bold(true),
		today:    r.NewStyle().Foreground(lipgloss.Color(p.TodayFG)).Background(lipgloss.Color(p.TodayBG)).Bold(true),
		panel:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(p.Border)).Padding(0, 1),
	}
}

// Columns returns how many month panels fit side by side.
func (t *TextRenderer) Columns() int {
	panelWidth := monthWidth + 4 + monthGap // border and padding
	cols := t.width / panelWidth
	switch {
	case cols < 1:
		return 1
	case cols > 4:
		return 4
	}
	return cols
}

// Render returns the year as styled text followed by the holiday legend.
func (t *TextRenderer) Render(year *calendar.Year, holidays []calendar.IndexEntry) string {
	cols := t.Columns()
	gap := strings.Repeat(" ", monthGap)

	var rows []string
	for start := 0; start < len(year.Months); start += cols {
		end := start + cols
		if end > len(year.Months) {
			end = len(year.Months)
		}

		var panels []string
		for i, m := range year.Months[start:end] {
			if i > 0 {
				panels = append(panels, gap)
			}
			panels = append(panels, t.renderMonth(m))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}

	if len(holidays) > 0 {
		rows = append(rows, t.renderLegend(holidays))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (t *TextRenderer) renderMonth(m calendar.Month) string {
	var b strings.Builder
	b.WriteString(t.title.Render(m.Title))
	b.WriteByte('\n')

	for _, h := range m.Headers {
		b.WriteString(t.weekday.Render(fmt.Sprintf("%*s", cellWidth, truncate(h.Label, cellWidth-1))))
	}

	col := 0
	newRow := func() {
		b.WriteByte('\n')
		col = 0
	}
	newRow()

	for range m.Blanks {
		b.WriteString(strings.Repeat(" ", cellWidth))
		col++
	}

	for _, d := range m.Days {
		if col == 7 {
			newRow()
		}
		b.WriteByte(' ')
		num := fmt.Sprintf("%2d", d.Day)
		switch {
		case d.IsToday:
			b.WriteString(t.today.Render(num))
		case d.IsHoliday():
			b.WriteString(t.holiday.Render(num))
		default:
			b.WriteString(t.day.Render(num))
		}
		col++
	}

	// pad the last week so every panel has the same width
	if col < 7 {
		b.WriteString(strings.Repeat(" ", (7-col)*cellWidth))
	}

	return t.panel.Render(b.String())
}

func (t *TextRenderer) renderLegend(holidays []calendar.IndexEntry) string {
	var b strings.Builder
	b.WriteString(t.renderer.NewStyle().Bold(true).Render("Feriados"))
	for _, h := range holidays {
		b.WriteByte('\n')
		b.WriteString(t.holiday.Render(shortDate(h.Key)))
		b.WriteString("  ")
		b.WriteString(h.Name)
	}
	return t.renderer.NewStyle().MarginTop(1).Render(b.String())
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

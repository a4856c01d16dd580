package view

import (
	"html/template"
	"strings"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
)

var tmplFuncs = template.FuncMap{
	"dayClass":  dayClass,
	"shortDate": shortDate,
}

func dayClass(cell calendar.DayCell) string {
	classes := []string{"day"}
	if cell.IsToday {
		classes = append(classes, "day--today")
	}
	if cell.IsHoliday() {
		classes = append(classes, "day--holiday")
	}
	return strings.Join(classes, " ")
}

// shortDate turns a YYYY-MM-DD key into DD/MM.
func shortDate(key string) string {
	if len(key) != len(calendar.DateKeyLayout) {
		return key
	}
	return key[8:10] + "/" + key[5:7]
}

package calendar

import (
	"time"
)

// Holiday is a fixed date of the configured year with its display name.
// Month is zero-based (0 = January).
type Holiday struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
}

// Config is the static calendar configuration. It is built once and never
// mutated; pass it by value.
type Config struct {
	Year         int
	MonthNames   [12]string
	WeekdayNames [7]string // Monday first
	Holidays     []Holiday
	Location     *time.Location
}

// Default year and locale labels
const DefaultYear = 2025

var monthNamesES = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Setiembre", "Octubre", "Noviembre", "Diciembre",
}

var weekdayNamesES = [7]string{"Lun", "Mar", "Mié", "Jue", "Vie", "Sáb", "Dom"}

// holidays2025 lists the Costa Rica public holidays observed in 2025
var holidays2025 = []Holiday{
	{Month: 0, Day: 1, Name: "Año Nuevo"},
	{Month: 3, Day: 11, Name: "Batalla de Rivas"},
	{Month: 3, Day: 17, Name: "Jueves Santo"},
	{Month: 3, Day: 18, Name: "Viernes Santo"},
	{Month: 4, Day: 1, Name: "Día Internacional del Trabajo"},
	{Month: 6, Day: 25, Name: "Anexión del Partido de Nicoya"},
	{Month: 7, Day: 2, Name: "Día de la Virgen de los Ángeles"},
	{Month: 7, Day: 15, Name: "Día de la Madre"},
	{Month: 8, Day: 15, Name: "Día de la Independencia"},
	{Month: 9, Day: 12, Name: "Día de las Culturas"},
	{Month: 11, Day: 25, Name: "Navidad"},
}

// Default returns the 2025 calendar with Spanish (Costa Rica) labels.
func Default() Config {
	holidays := make([]Holiday, len(holidays2025))
	copy(holidays, holidays2025)

	return Config{
		Year:         DefaultYear,
		MonthNames:   monthNamesES,
		WeekdayNames: weekdayNamesES,
		Holidays:     holidays,
		Location:     time.Local,
	}
}

// MonthName returns the localized name of a zero-based month.
func (c Config) MonthName(month int) string {
	return c.MonthNames[month]
}

// MonthTitle returns the panel label, e.g. "Enero 2025".
func (c Config) MonthTitle(month int) string {
	return c.MonthNames[month] + " " + itoa(c.Year)
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

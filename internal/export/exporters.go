package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klabast/wb-services/feriados-kalender/internal/calendar"
)

// ICS constants
const (
	ICSProductID = "-//Winterberg//Feriados Kalender//ES"
	ICSTimezone  = "America/Costa_Rica"
	UIDDomain    = "feriados.wb-services"
)

// Format names accepted by Write
const (
	FormatICS  = "ics"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ErrInvalidFormat is returned for an unknown export format.
var ErrInvalidFormat = errors.New("invalid export format")

// uidNamespace scopes the name-based event UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(UIDDomain))

// Write exports the holidays of cfg in the given format.
func Write(w io.Writer, format string, cfg calendar.Config, now time.Time) error {
	entries := calendar.BuildHolidayIndex(cfg.Year, cfg.Holidays).Entries()

	switch format {
	case FormatICS:
		return WriteICS(w, cfg.Year, entries, now)
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, cfg.Year, entries)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// FileName returns the suggested download name, e.g. feriados_2025.ics.
func FileName(year int, format string) string {
	return fmt.Sprintf("feriados_%d.%s", year, format)
}

// EventUID returns a stable UID for a holiday so that calendar apps update
// instead of duplicating events on re-import.
func EventUID(key string) string {
	return uuid.NewSHA1(uidNamespace, []byte(key)).String() + "@" + UIDDomain
}

// WriteICS writes an iCalendar file with one all-day event per holiday.
func WriteICS(w io.Writer, year int, entries []calendar.IndexEntry, now time.Time) error {
	ew := &errWriter{w: w}
	stamp := now.UTC().Format("20060102T150405Z")

	ew.line("BEGIN:VCALENDAR")
	ew.line("VERSION:2.0")
	ew.line("PRODID:" + ICSProductID)
	ew.line("X-WR-CALNAME:Feriados " + strconv.Itoa(year))
	ew.line("X-WR-TIMEZONE:" + ICSTimezone)
	ew.line("CALSCALE:GREGORIAN")
	ew.line("METHOD:PUBLISH")

	for _, e := range entries {
		date, err := time.Parse(calendar.DateKeyLayout, e.Key)
		if err != nil {
			continue
		}

		ew.line("BEGIN:VEVENT")
		ew.line("UID:" + EventUID(e.Key))
		ew.line("DTSTAMP:" + stamp)
		ew.line("DTSTART;VALUE=DATE:" + date.Format("20060102"))
		ew.line("DTEND;VALUE=DATE:" + date.AddDate(0, 0, 1).Format("20060102"))
		ew.line("SUMMARY:" + escapeICS(e.Name))
		ew.line("TRANSP:TRANSPARENT")
		ew.line("END:VEVENT")
	}

	ew.line("END:VCALENDAR")
	return ew.err
}

// WriteCSV writes one row per holiday with a header.
func WriteCSV(w io.Writer, entries []calendar.IndexEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Fecha", "Feriado"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write([]string{e.Key, e.Name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the year and its holidays as a JSON document.
func WriteJSON(w io.Writer, year int, entries []calendar.IndexEntry) error {
	data := map[string]interface{}{
		"year":     year,
		"holidays": entries,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON export: %w", err)
	}
	return nil
}

// escapeICS escapes TEXT values per RFC 5545
func escapeICS(s string) string {
	r := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\n", `\n`)
	return r.Replace(s)
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) line(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s+"\r\n")
}

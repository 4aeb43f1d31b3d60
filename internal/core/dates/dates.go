// Package dates implements the date and time handling for the booking
// system: user-facing formatting in Spanish, day-granularity
// classification of appointment dates, availability generation and
// chronological sorting.
//
// All stored dates are ISO calendar days (yyyy-MM-dd) and all stored
// times are 24-hour HH:mm slots. Formatting never fails: unparseable
// input yields the "Fecha inválida" sentinel (or the raw input for
// times) so a corrupted record still renders.
package dates

import (
	"fmt"
	"time"
)

// ISODate is the layout of stored calendar days.
const ISODate = "2006-01-02"

// InvalidDateLabel is returned when a stored date cannot be parsed.
const InvalidDateLabel = "Fecha inválida"

var weekdays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Service answers date and time questions relative to an injectable
// clock, so classification ("Hoy", "Mañana") is testable against a
// fixed instant.
type Service struct {
	now func() time.Time
}

// New creates a date service using the wall clock.
func New() *Service {
	return &Service{now: time.Now}
}

// NewWithClock creates a date service with a fixed or fake clock.
func NewWithClock(now func() time.Time) *Service {
	return &Service{now: now}
}

// ParseISO parses a stored calendar day. Full RFC 3339 timestamps are
// accepted too, truncated to their calendar day.
func ParseISO(value string) (time.Time, error) {
	if t, err := time.Parse(ISODate, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ValidDate reports whether value is a parseable calendar date.
func ValidDate(value string) bool {
	if value == "" {
		return false
	}
	_, err := ParseISO(value)
	return err == nil
}

// parseHHMM converts a HH:mm string to minutes since midnight.
func parseHHMM(value string) (int, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("parsing time %q: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// startOfDay truncates t to midnight of its calendar day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// wall re-expresses the clock reading in UTC with the same wall-clock
// components. Stored dates parse as UTC midnights; doing all arithmetic
// on wall-clock components keeps day differences independent of the
// host timezone.
func wall(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// FormatDate renders a stored date as dd/MM/yyyy. Empty input renders
// empty; unparseable input renders the invalid-date sentinel.
func FormatDate(value string) string {
	if value == "" {
		return ""
	}
	t, err := ParseISO(value)
	if err != nil {
		return InvalidDateLabel
	}
	return t.Format("02/01/2006")
}

// FormatDateVerbose renders a stored date with its Spanish weekday and
// month, e.g. "martes, 15 de septiembre de 2026".
func FormatDateVerbose(value string) string {
	if value == "" {
		return ""
	}
	t, err := ParseISO(value)
	if err != nil {
		return InvalidDateLabel
	}
	return fmt.Sprintf("%s, %02d de %s de %d",
		weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// FormatTime renders a HH:mm slot on a 12-hour clock with AM/PM.
// Unparseable input is returned unchanged.
func FormatTime(value string) string {
	if value == "" {
		return ""
	}
	t, err := time.Parse("15:04", value)
	if err != nil {
		return value
	}
	return t.Format("3:04 PM")
}

// FormatDateTime composes the formatted date and time as shown to users.
func FormatDateTime(date, hhmm string) string {
	return fmt.Sprintf("%s a las %s", FormatDate(date), FormatTime(hhmm))
}

// IsFutureDate reports whether the calendar day of value is today or
// later. The comparison is day-granular; time of day never matters.
// Unparseable input is never a future date.
func (s *Service) IsFutureDate(value string) bool {
	t, err := ParseISO(value)
	if err != nil {
		return false
	}
	today := startOfDay(wall(s.now()))
	day := startOfDay(t)
	return day.After(today) || sameDay(day, today)
}

// sameWeek reports whether a and b fall in the same Sunday-started week.
func sameWeek(a, b time.Time) bool {
	weekStart := func(t time.Time) time.Time {
		d := startOfDay(t)
		return d.AddDate(0, 0, -int(d.Weekday()))
	}
	return weekStart(a).Equal(weekStart(b))
}

// RelativeLabel classifies a stored date relative to now: "Hoy",
// "Mañana", "Esta semana" within the current week, "En N días" up to a
// week ahead, "Hace N días" for past dates, and the plain formatted date
// beyond that. Unparseable input falls back to FormatDate.
func (s *Service) RelativeLabel(value string) string {
	if value == "" {
		return ""
	}
	t, err := ParseISO(value)
	if err != nil {
		return FormatDate(value)
	}

	now := wall(s.now())
	switch {
	case sameDay(t, now):
		return "Hoy"
	case sameDay(t, now.AddDate(0, 0, 1)):
		return "Mañana"
	case sameWeek(t, now):
		return "Esta semana"
	}

	// Whole 24-hour periods between now and midnight of the target day,
	// truncated toward zero.
	days := int(startOfDay(t).Sub(now).Hours() / 24)
	switch {
	case days > 0 && days <= 7:
		return fmt.Sprintf("En %d día%s", days, plural(days))
	case days < 0:
		return fmt.Sprintf("Hace %d día%s", -days, plural(-days))
	}
	return FormatDate(value)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// TimeUntil labels how far away an appointment instant is, in whole
// days: "Hoy", "Mañana", "En N días" or "Pasada". The day difference is
// truncated, so a same-day appointment whose time already passed is
// still "Hoy"; that coarse granularity is intended.
func (s *Service) TimeUntil(date, hhmm string) string {
	if date == "" || hhmm == "" {
		return ""
	}
	day, err := ParseISO(date)
	if err != nil {
		return ""
	}
	minutes, err := parseHHMM(hhmm)
	if err != nil {
		return ""
	}
	at := startOfDay(day).Add(time.Duration(minutes) * time.Minute)

	days := int(at.Sub(wall(s.now())).Hours() / 24)
	switch {
	case days == 0:
		return "Hoy"
	case days == 1:
		return "Mañana"
	case days > 1:
		return fmt.Sprintf("En %d días", days)
	}
	return "Pasada"
}

// MinInputDate is the earliest selectable appointment date: tomorrow.
func (s *Service) MinInputDate() string {
	return s.now().AddDate(0, 0, 1).Format(ISODate)
}

// MaxInputDate is the latest selectable appointment date: twelve weeks
// from today.
func (s *Service) MaxInputDate() string {
	return s.now().AddDate(0, 0, 12*7).Format(ISODate)
}

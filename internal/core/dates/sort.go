package dates

import (
	"sort"

	"github.com/uniwell-labs/bienestar-cli/internal/core/domain"
)

// Period selects which appointments a view shows.
type Period string

const (
	// PeriodAll keeps every appointment.
	PeriodAll Period = "todas"
	// PeriodToday keeps appointments on the current calendar day.
	PeriodToday Period = "hoy"
	// PeriodWeek keeps appointments within the current week.
	PeriodWeek Period = "semana"
	// PeriodFuture keeps appointments today or later.
	PeriodFuture Period = "futuras"
	// PeriodPast keeps appointments strictly before today.
	PeriodPast Period = "pasadas"
)

// SortAppointments returns a new slice ordered by calendar date
// ascending, then time-of-day ascending. The sort is stable and the
// input is not mutated. Records whose date cannot be parsed keep their
// relative position; an unparseable time sorts as midnight.
func SortAppointments(appointments []domain.Appointment) []domain.Appointment {
	sorted := make([]domain.Appointment, len(appointments))
	copy(sorted, appointments)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, erri := ParseISO(sorted[i].Date)
		dj, errj := ParseISO(sorted[j].Date)
		if erri != nil || errj != nil {
			return false
		}
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return minutesOrZero(sorted[i].Time) < minutesOrZero(sorted[j].Time)
	})
	return sorted
}

func minutesOrZero(hhmm string) int {
	minutes, err := parseHHMM(hhmm)
	if err != nil {
		return 0
	}
	return minutes
}

// FilterByPeriod keeps the appointments falling in the given period.
// Appointments with unparseable dates always pass the filter, so broken
// records stay visible instead of silently vanishing from every view.
func (s *Service) FilterByPeriod(appointments []domain.Appointment, period Period) []domain.Appointment {
	now := wall(s.now())
	filtered := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		day, err := ParseISO(a.Date)
		if err != nil {
			filtered = append(filtered, a)
			continue
		}
		var keep bool
		switch period {
		case PeriodToday:
			keep = sameDay(day, now)
		case PeriodWeek:
			keep = sameWeek(day, now)
		case PeriodFuture:
			keep = day.After(now) || sameDay(day, now)
		case PeriodPast:
			keep = day.Before(startOfDay(now))
		default:
			keep = true
		}
		if keep {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

package dates

import "time"

// DefaultDaysAhead is how many selectable dates the picker offers.
const DefaultDaysAhead = 30

// DateOption is a selectable appointment date for pickers.
type DateOption struct {
	// Value is the ISO calendar day submitted with the form.
	Value string
	// Label is the verbose Spanish rendering shown to the user.
	Label string
	// IsToday marks the current calendar day.
	IsToday bool
	// IsTomorrow marks the next calendar day.
	IsTomorrow bool
}

// TimeSlot is a bookable half-hour slot.
type TimeSlot struct {
	// Value is the 24-hour HH:mm form value.
	Value string
	// Label is the 12-hour rendering shown to the user.
	Label string
}

// AvailableDates returns the next daysAhead weekday dates starting
// tomorrow, skipping Saturdays and Sundays. Non-positive daysAhead uses
// the default of 30.
func (s *Service) AvailableDates(daysAhead int) []DateOption {
	if daysAhead <= 0 {
		daysAhead = DefaultDaysAhead
	}

	now := wall(s.now())
	options := make([]DateOption, 0, daysAhead)
	day := startOfDay(now).AddDate(0, 0, 1)
	for len(options) < daysAhead {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			value := day.Format(ISODate)
			options = append(options, DateOption{
				Value:      value,
				Label:      FormatDateVerbose(value),
				IsToday:    sameDay(day, now),
				IsTomorrow: sameDay(day, now.AddDate(0, 0, 1)),
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return options
}

// TimeSlots returns the fixed set of bookable slots: every half hour
// from 08:00 to 11:30 and from 14:00 to 16:30.
func TimeSlots() []TimeSlot {
	return []TimeSlot{
		{Value: "08:00", Label: "8:00 AM"},
		{Value: "08:30", Label: "8:30 AM"},
		{Value: "09:00", Label: "9:00 AM"},
		{Value: "09:30", Label: "9:30 AM"},
		{Value: "10:00", Label: "10:00 AM"},
		{Value: "10:30", Label: "10:30 AM"},
		{Value: "11:00", Label: "11:00 AM"},
		{Value: "11:30", Label: "11:30 AM"},
		{Value: "14:00", Label: "2:00 PM"},
		{Value: "14:30", Label: "2:30 PM"},
		{Value: "15:00", Label: "3:00 PM"},
		{Value: "15:30", Label: "3:30 PM"},
		{Value: "16:00", Label: "4:00 PM"},
		{Value: "16:30", Label: "4:30 PM"},
	}
}

package domain

// Schedule is the weekly grid of shows keyed by day and time slot.
type Schedule map[DayOfWeek]map[TimeOfDay]Show

func NewSchedule(shows []Show) Schedule {
	schedule := make(Schedule, len(Days))

	for _, show := range shows {
		slots, ok := schedule[show.Day]
		if !ok {
			slots = make(map[TimeOfDay]Show, len(Times))
			schedule[show.Day] = slots
		}

		slots[show.Time] = show
	}

	return schedule
}

// Slot returns the show scheduled for day and time, if any.
func (s Schedule) Slot(day DayOfWeek, time TimeOfDay) (Show, bool) {
	show, ok := s[day][time]
	return show, ok
}

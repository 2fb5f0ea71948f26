package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayOfWeek(t *testing.T) {
	day, err := ParseDayOfWeek(" friday ")
	require.NoError(t, err)
	assert.Equal(t, Friday, day)

	_, err = ParseDayOfWeek("FUNDAY")
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = ParseDayOfWeek("")
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("Evening")
	require.NoError(t, err)
	assert.Equal(t, Evening, tod)

	_, err = ParseTimeOfDay("NOON")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestHallLayoutTickets(t *testing.T) {
	tickets := HallLayout{Rows: 2, Seats: 2, Price: 10}.Tickets()

	assert.Equal(t, []Ticket{
		{Row: 1, Seat: 1, Price: 10},
		{Row: 1, Seat: 2, Price: 10},
		{Row: 2, Seat: 1, Price: 10},
		{Row: 2, Seat: 2, Price: 10},
	}, tickets)

	assert.Empty(t, HallLayout{Rows: 0, Seats: 5}.Tickets())
}

func TestNewSchedule(t *testing.T) {
	schedule := NewSchedule([]Show{
		{ID: 1, Day: Monday, Time: Morning, Movie: "Alien"},
		{ID: 2, Day: Monday, Time: Night, Movie: "Heat"},
	})

	show, ok := schedule.Slot(Monday, Night)
	assert.True(t, ok)
	assert.Equal(t, 2, show.ID)

	_, ok = schedule.Slot(Sunday, Night)
	assert.False(t, ok)
}

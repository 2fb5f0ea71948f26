package domain

import (
	"context"
	"fmt"
	"strings"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

// Days lists the days of the week in schedule order.
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToUpper(strings.TrimSpace(s)))
	for _, d := range Days {
		if d == day {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDay, s)
}

func (d DayOfWeek) String() string {
	return string(d)
}

type TimeOfDay string

const (
	Morning   TimeOfDay = "MORNING"
	Afternoon TimeOfDay = "AFTERNOON"
	Evening   TimeOfDay = "EVENING"
	Night     TimeOfDay = "NIGHT"
)

// Times lists the time slots of a day in schedule order.
var Times = []TimeOfDay{Morning, Afternoon, Evening, Night}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t := TimeOfDay(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range Times {
		if v == t {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

func (t TimeOfDay) String() string {
	return string(t)
}

type Show struct {
	ID      int       `json:"id"`
	Day     DayOfWeek `json:"day"`
	Time    TimeOfDay `json:"time"`
	Movie   string    `json:"movie"`
	Tickets []Ticket  `json:"tickets,omitempty"`
}

// ShowRepository persists shows. Create stores the show and its tickets atomically.
type ShowRepository interface {
	Create(ctx context.Context, show *Show) error
	Update(ctx context.Context, show *Show) error
	Delete(ctx context.Context, id int) error
	Find(ctx context.Context, id int) (*Show, error)
	FindAll(ctx context.Context) ([]Show, error)
	FindByDay(ctx context.Context, day DayOfWeek) ([]Show, error)
	FindByTime(ctx context.Context, time TimeOfDay) ([]Show, error)
	FindByDayAndTime(ctx context.Context, day DayOfWeek, time TimeOfDay) ([]Show, error)
	FindByMovie(ctx context.Context, movie string) ([]Show, error)
	FindByTicket(ctx context.Context, ticketID int) (*Show, error)
}

package session

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultCloseSpec fires at the regular US equity close on weekdays.
const DefaultCloseSpec = "0 16 * * 1-5"

// Calendar knows when trading sessions close. It does not model holidays.
type Calendar struct {
	Spec     string
	Location *time.Location
	schedule cron.Schedule
}

// NewCalendar parses a standard five-field cron expression describing session
// closes. A nil location means closes are evaluated in the caller's location.
func NewCalendar(spec string, loc *time.Location) (*Calendar, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse session close spec %q: %w", spec, err)
	}
	return &Calendar{Spec: spec, Location: loc, schedule: sched}, nil
}

// NextClose returns the first session close strictly after t.
func (c *Calendar) NextClose(t time.Time) time.Time {
	if c.Location != nil {
		t = t.In(c.Location)
	}
	return c.schedule.Next(t)
}

// NextSession returns the close of the first session after the trading day
// that contains day.
func (c *Calendar) NextSession(day time.Time) time.Time {
	y, m, d := day.Date()
	endOfDay := time.Date(y, m, d+1, 0, 0, 0, 0, day.Location()).Add(-time.Second)
	return c.NextClose(endOfDay)
}

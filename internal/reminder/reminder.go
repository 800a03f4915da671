// Package reminder arranges the recurring monthly payment reminder.
//
// The reminder is a generic alert on a fixed day of the month, it does not
// track per-obligation due dates. Scheduling is fire-and-forget: the engine
// never waits for an alert to be delivered.
package reminder

import (
	"sync"
	"time"

	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/report"
	"github.com/payremind/backend/internal/types"
	"github.com/rs/zerolog/log"
)

// The alert fires on the first day of every month at 09:00 local time.
const (
	triggerDay  = 1
	triggerHour = 9
)

// Scheduler owns the recurring reminder alert.
type Scheduler struct {
	mu        sync.Mutex
	scheduled bool

	// now and announce are replaced in tests
	now      func() time.Time
	announce func(time.Time)
}

// New returns a Scheduler that logs the reminder when it fires.
func New() *Scheduler {
	return &Scheduler{
		now:      time.Now,
		announce: announce,
	}
}

// EnsureScheduled arranges the monthly reminder. It is idempotent, calling
// it again while a reminder is scheduled does nothing.
func (s *Scheduler) EnsureScheduled() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scheduled {
		return
	}
	s.scheduled = true

	next := NextTrigger(s.now())
	log.Info().Time("next", next).Msg("monthly reminder scheduled")

	go s.run(next)
}

func (s *Scheduler) run(next time.Time) {
	for {
		timer := time.NewTimer(next.Sub(s.now()))
		<-timer.C

		s.announce(s.now())
		next = NextTrigger(s.now())
	}
}

// NextTrigger returns the first trigger time after now.
func NextTrigger(now time.Time) time.Time {
	trigger := time.Date(now.Year(), now.Month(), triggerDay, triggerHour, 0, 0, 0, now.Location())
	if !trigger.After(now) {
		trigger = trigger.AddDate(0, 1, 0)
	}

	return trigger
}

// announce logs the reminder together with the current due counts. The
// snapshot read fails open, a broken store never stops the reminder.
func announce(now time.Time) {
	r := report.Summarize(models.Obligations(), types.DateOf(now))

	log.Info().
		Int("due", r.Due).
		Int("upcoming", r.Upcoming).
		Int("total", r.Total).
		Msg("monthly payment reminder: check unpaid obligations")
}

// Package schedule implements the recurring-obligation scheduling engine.
//
// All functions are pure over an obligation snapshot and a calendar day,
// nothing in this package touches the database.
package schedule

import (
	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/types"
)

// UpcomingWindowDays is the number of days before the due date during which
// an obligation counts as upcoming. The boundary is inclusive: a due date
// exactly this many days out is upcoming.
const UpcomingWindowDays = 7

// Status is the bucket an obligation falls into for a given day.
type Status string

const (
	// StatusPaid means the current cycle is satisfied and not yet near due.
	StatusPaid Status = "paid"
	// StatusDue means the cycle has elapsed and payment is owed now.
	StatusDue Status = "due"
	// StatusUpcoming means the due date falls within the upcoming window.
	StatusUpcoming Status = "upcoming"
)

// Base returns the anchor day the next due date is computed from: the last
// payment if there is one after the start date, the start date otherwise.
// A payment recorded before the start date never moves the anchor, so clock
// skew cannot produce a due date earlier than the start date.
func Base(o models.Obligation) types.Date {
	if o.LastPaidAt != nil && o.LastPaidAt.After(o.StartDate) {
		return *o.LastPaidAt
	}

	return o.StartDate
}

// NextDueDate returns the day the next payment is due: one interval after
// the base day. The result is always on or after the start date.
func NextDueDate(o models.Obligation) types.Date {
	return Base(o).AddDays(int(o.IntervalDays))
}

// Classify returns the status bucket of an obligation on the given day.
//
// An obligation is due once a full interval has elapsed since the base day.
// Paying earlier on the same day therefore keeps it out of the due bucket
// until the interval elapses again. A start date in the future classifies
// as paid or upcoming depending on how far out the due date is.
func Classify(o models.Obligation, now types.Date) Status {
	elapsed := now.DaysSince(Base(o))
	if elapsed >= int(o.IntervalDays) {
		return StatusDue
	}

	untilDue := NextDueDate(o).DaysSince(now)
	if untilDue >= 0 && untilDue <= UpcomingWindowDays {
		return StatusUpcoming
	}

	return StatusPaid
}

// Package report aggregates obligations into time-bucketed summaries.
package report

import (
	"time"

	"github.com/payremind/backend/internal/models"
	"github.com/payremind/backend/internal/schedule"
	"github.com/payremind/backend/internal/types"
	"golang.org/x/exp/slices"
)

// PeriodCount is the number of obligations created in one calendar month.
type PeriodCount struct {
	Month types.Month `json:"month" example:"2024-01"` // The calendar month
	Count int         `json:"count" example:"3"`       // Obligations created in that month
}

// Report is a summary of all obligations on a given day.
type Report struct {
	Total    int           `json:"total" example:"10"`   // Number of obligations
	Paid     int           `json:"paid" example:"5"`     // Obligations with a satisfied cycle
	Due      int           `json:"due" example:"2"`      // Obligations owed now
	Upcoming int           `json:"upcoming" example:"3"` // Obligations due within the upcoming window
	Periods  []PeriodCount `json:"periods"`              // Creation counts per month, chronologically ascending
}

// Summarize builds the report for a snapshot of obligations. It is read-only
// over the snapshot.
//
// Obligations are grouped by the month they were created in, not by payment
// activity. That matches the original app's insights view and is kept as-is
// pending product clarification.
func Summarize(obligations []models.Obligation, now types.Date) Report {
	r := Report{
		Total:   len(obligations),
		Periods: []PeriodCount{},
	}

	counts := make(map[types.Month]int)
	for _, o := range obligations {
		switch schedule.Classify(o, now) {
		case schedule.StatusDue:
			r.Due++
		case schedule.StatusUpcoming:
			r.Upcoming++
		default:
			r.Paid++
		}

		counts[types.MonthOf(o.CreatedAt)]++
	}

	for month, count := range counts {
		r.Periods = append(r.Periods, PeriodCount{Month: month, Count: count})
	}

	// Sort by the constructed month. Sorting the label strings would order
	// months of different years incorrectly.
	slices.SortFunc(r.Periods, func(a, b PeriodCount) int {
		return time.Time(a.Month).Compare(time.Time(b.Month))
	})

	return r
}

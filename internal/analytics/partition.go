package analytics

import (
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// snapshotPartition is the shared active/graded/overdue/upcoming split used
// by the health and overload computations.
type snapshotPartition struct {
	graded  []domain.Deliverable
	active  []domain.Deliverable
	overdue []domain.Deliverable
	// upcoming holds active items due on or before today+7. Overdue items
	// qualify too: work that was due yesterday still competes for this
	// week's hours.
	upcoming []domain.Deliverable
}

func partitionSnapshot(items []domain.Deliverable, now time.Time) snapshotPartition {
	today := DayOf(now)
	horizon := today.AddDate(0, 0, 7)

	var p snapshotPartition
	for _, d := range items {
		if d.Status == domain.StatusGraded {
			p.graded = append(p.graded, d)
			continue
		}
		p.active = append(p.active, d)
		due := DayOf(d.DueDate)
		if due.Before(today) {
			p.overdue = append(p.overdue, d)
		}
		if !due.After(horizon) {
			p.upcoming = append(p.upcoming, d)
		}
	}
	return p
}

// sumRemaining totals remaining effort, so submitted/graded work counts for
// zero regardless of its estimate.
func sumRemaining(items []domain.Deliverable) float64 {
	var total float64
	for _, d := range items {
		total += d.RemainingHours()
	}
	return total
}

func sumWeight(items []domain.Deliverable) float64 {
	var total float64
	for _, d := range items {
		total += d.GradeWeight
	}
	return total
}

package analytics

import (
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// NextDeadline returns the active deliverable with the earliest due date on
// or after today, or nil when none is pending. Ties keep snapshot order.
func NextDeadline(items []domain.Deliverable, now time.Time) *domain.Deliverable {
	today := DayOf(now)
	var next *domain.Deliverable
	for i := range items {
		d := &items[i]
		if !d.IsActive() || DayOf(d.DueDate).Before(today) {
			continue
		}
		if next == nil || DayOf(d.DueDate).Before(DayOf(next.DueDate)) {
			next = d
		}
	}
	if next == nil {
		return nil
	}
	out := *next
	return &out
}

// OverdueAndAtRisk lists active deliverables that are past due or flagged
// high/critical risk, in snapshot order.
func OverdueAndAtRisk(items []domain.Deliverable, now time.Time) []domain.Deliverable {
	today := DayOf(now)
	var out []domain.Deliverable
	for _, d := range items {
		if !d.IsActive() {
			continue
		}
		if DayOf(d.DueDate).Before(today) || d.RiskLevel == domain.RiskHigh || d.RiskLevel == domain.RiskCritical {
			out = append(out, d)
		}
	}
	return out
}

// HoursDueWithin7Days totals remaining effort due inside the 7-day window,
// overdue work included.
func HoursDueWithin7Days(items []domain.Deliverable, now time.Time) float64 {
	return sumRemaining(partitionSnapshot(items, now).upcoming)
}

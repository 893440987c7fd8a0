package service

import (
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// resolveNow returns the caller-supplied clock override when present,
// otherwise the current time. All engine calls receive this value so a whole
// request observes one consistent "today".
func resolveNow(override *time.Time) time.Time {
	if override != nil {
		return *override
	}
	return time.Now()
}

// derefDeliverables converts repo results into the value slice the engine
// consumes.
func derefDeliverables(items []*domain.Deliverable) []domain.Deliverable {
	out := make([]domain.Deliverable, 0, len(items))
	for _, d := range items {
		out = append(out, *d)
	}
	return out
}

// weeklyBudgetOrDefault guards against unset or negative stored budgets.
func weeklyBudgetOrDefault(s *domain.Settings) float64 {
	if s == nil || s.WeeklyBudgetHours <= 0 {
		return 0
	}
	return s.WeeklyBudgetHours
}

// defaultTargetOrFallback returns the configured course target default.
func defaultTargetOrFallback(s *domain.Settings) float64 {
	if s == nil || s.DefaultTargetGrade <= 0 {
		return domain.DefaultTargetGrade
	}
	return s.DefaultTargetGrade
}

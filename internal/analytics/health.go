package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// Composite health score factor weights.
const (
	healthWeightWorkload   = 0.30
	healthWeightGrades     = 0.30
	healthWeightTimeliness = 0.25
	healthWeightBalance    = 0.15
)

// defaultGradeScore is the optimistic prior used before any grades exist.
const defaultGradeScore = 80.0

type HealthFactors struct {
	Workload   int
	Grades     int
	Timeliness int
	Balance    int
}

type HealthResult struct {
	Score       int
	Trend       domain.Trend
	Factors     HealthFactors
	Explanation []string
}

// ComputeHealth derives the composite 0-100 academic health score from the
// deliverable snapshot and the weekly hour budget.
func ComputeHealth(items []domain.Deliverable, weeklyBudget float64, now time.Time) HealthResult {
	p := partitionSnapshot(items, now)
	upcomingHours := sumRemaining(p.upcoming)

	// Workload: saturates at 0 once upcoming load reaches twice the budget.
	var workloadScore float64
	switch {
	case weeklyBudget <= 0:
		if upcomingHours > 0 {
			workloadScore = 0
		} else {
			workloadScore = 100
		}
	default:
		workloadScore = math.Max(0, 100-(upcomingHours/weeklyBudget)*50)
	}

	// Grades: mean over graded items that actually carry a grade value.
	var gradedWithScores []domain.Deliverable
	for _, d := range p.graded {
		if d.HasGrade() {
			gradedWithScores = append(gradedWithScores, d)
		}
	}
	avgGrade := defaultGradeScore
	if len(gradedWithScores) > 0 {
		var sum float64
		for _, d := range gradedWithScores {
			sum += d.GradeValue()
		}
		avgGrade = sum / float64(len(gradedWithScores))
	}
	gradeScore := avgGrade

	// Timeliness: share of active work that is overdue.
	timelinessScore := 100.0
	if len(p.active) > 0 {
		timelinessScore = math.Max(0, 100-float64(len(p.overdue))/float64(len(p.active))*100)
	}

	// Balance: weekly budget against the average daily demand of the
	// upcoming window. No upcoming hours means nothing to balance.
	balanceScore := 100.0
	if len(p.active) > 0 && upcomingHours > 0 {
		if weeklyBudget <= 0 {
			balanceScore = 0
		} else {
			balanceScore = math.Min(100, weeklyBudget/(upcomingHours/7)*100)
		}
	}

	score := int(math.Round(
		workloadScore*healthWeightWorkload +
			gradeScore*healthWeightGrades +
			timelinessScore*healthWeightTimeliness +
			balanceScore*healthWeightBalance))

	trend := domain.TrendDown
	switch {
	case score >= 75:
		trend = domain.TrendUp
	case score >= 50:
		trend = domain.TrendStable
	}

	var explanation []string
	if workloadScore < 70 {
		explanation = append(explanation, fmt.Sprintf(
			"High upcoming workload: %.0fh needed in next 7 days vs %.0fh/week budget",
			upcomingHours, weeklyBudget))
	}
	if len(p.overdue) > 0 {
		explanation = append(explanation, fmt.Sprintf(
			"%d overdue deliverable%s", len(p.overdue), plural(len(p.overdue))))
	}
	if len(gradedWithScores) > 0 {
		explanation = append(explanation, fmt.Sprintf(
			"Average grade: %.1f%% across %d graded item%s",
			avgGrade, len(gradedWithScores), plural(len(gradedWithScores))))
	}
	if len(explanation) == 0 {
		explanation = append(explanation, "Looking good! Stay on track with your schedule.")
	}

	return HealthResult{
		Score: score,
		Trend: trend,
		Factors: HealthFactors{
			Workload:   int(math.Round(workloadScore)),
			Grades:     int(math.Round(gradeScore)),
			Timeliness: int(math.Round(timelinessScore)),
			Balance:    int(math.Round(balanceScore)),
		},
		Explanation: explanation,
	}
}

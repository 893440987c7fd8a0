package analytics

import (
	"fmt"
	"testing"

	"github.com/natbrooks/orbit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedFixtures() []domain.Deliverable {
	return []domain.Deliverable{
		{ID: "a", Title: "Overdue lab", Status: domain.StatusIncomplete, DueDate: due(-4), EstimatedHours: 6, GradeWeight: 10},
		{ID: "b", Title: "Essay", Status: domain.StatusInProgress, DueDate: due(1), EstimatedHours: 8, GradeWeight: 25},
		{ID: "c", Title: "Quiz", Status: domain.StatusGraded, DueDate: due(-10), EstimatedHours: 1, GradeWeight: 15, ActualGrade: domain.FloatPtr(62)},
		{ID: "d", Title: "Midterm", Status: domain.StatusGraded, DueDate: due(-20), EstimatedHours: 3, GradeWeight: 20, ActualGrade: domain.FloatPtr(91)},
		{ID: "e", Title: "Final project", Status: domain.StatusIncomplete, DueDate: due(6), EstimatedHours: 14, GradeWeight: 30},
		{ID: "f", Title: "Reading response", Status: domain.StatusSubmitted, DueDate: due(2), EstimatedHours: 2, GradeWeight: 5},
	}
}

func TestComputeHealth_FactorsStayInRange(t *testing.T) {
	budgets := []float64{0, 5, 10, 40, 200}
	for _, budget := range budgets {
		t.Run(fmt.Sprintf("budget_%.0f", budget), func(t *testing.T) {
			result := ComputeHealth(mixedFixtures(), budget, testNow)

			for name, v := range map[string]int{
				"score":      result.Score,
				"workload":   result.Factors.Workload,
				"grades":     result.Factors.Grades,
				"timeliness": result.Factors.Timeliness,
				"balance":    result.Factors.Balance,
			} {
				assert.GreaterOrEqual(t, v, 0, name)
				assert.LessOrEqual(t, v, 100, name)
			}
		})
	}
}

func TestComputeHealth_Deterministic(t *testing.T) {
	first := ComputeHealth(mixedFixtures(), 20, testNow)
	second := ComputeHealth(mixedFixtures(), 20, testNow)
	assert.Equal(t, first, second)
}

func TestComputeOverloadRisk_LevelEscalatesAsBudgetShrinks(t *testing.T) {
	rank := map[domain.RiskLevel]int{
		domain.RiskLow:      0,
		domain.RiskMedium:   1,
		domain.RiskHigh:     2,
		domain.RiskCritical: 3,
	}

	// Fixtures carry 28h of upcoming work, so shrinking the budget walks
	// utilization through every band.
	budgets := []float64{80, 40, 20, 10, 2}
	prev := -1
	for _, budget := range budgets {
		result := ComputeOverloadRisk(mixedFixtures(), budget, testNow)
		assert.GreaterOrEqual(t, rank[result.Level], prev, "budget %.0f", budget)
		prev = rank[result.Level]
	}
}

func TestComputeOverloadRisk_ScoreStaysInLevelRange(t *testing.T) {
	for budget := 1.0; budget <= 100; budget += 3 {
		result := ComputeOverloadRisk(mixedFixtures(), budget, testNow)
		assert.GreaterOrEqual(t, result.Score, 0, "budget %.0f", budget)
		assert.LessOrEqual(t, result.Score, 100, "budget %.0f", budget)
		switch result.Level {
		case domain.RiskLow:
			assert.Less(t, result.Score, 50, "budget %.0f", budget)
		case domain.RiskMedium:
			assert.GreaterOrEqual(t, result.Score, 50, "budget %.0f", budget)
		case domain.RiskHigh:
			assert.GreaterOrEqual(t, result.Score, 70, "budget %.0f", budget)
		case domain.RiskCritical:
			assert.GreaterOrEqual(t, result.Score, 85, "budget %.0f", budget)
		}
	}
}

func TestAnalytics_InputsNotMutated(t *testing.T) {
	items := mixedFixtures()
	snapshot := mixedFixtures()

	ComputeHealth(items, 20, testNow)
	ComputeOverloadRisk(items, 20, testNow)
	WeightedAverage(items)
	ProjectedFinal(items, domain.DefaultTargetGrade)
	TodaysFocus(items, testNow)
	SevenDayWorkload(items, testNow)
	SevenDayGradeProjection(items, domain.DefaultTargetGrade, testNow)
	GradeWhatIf(items, 85)
	DropLowest(items)
	AllocateEffort([]domain.Deliverable{items[0], items[4]}, 10, testNow)
	BuildSchedulePlan(items, 28, nil, testNow)

	require.Equal(t, snapshot, items)
}

func TestTodaysFocus_ScoresNonNegativeAndCapped(t *testing.T) {
	focus := TodaysFocus(mixedFixtures(), testNow)
	require.LessOrEqual(t, len(focus), 3)
	for i := 1; i < len(focus); i++ {
		assert.GreaterOrEqual(t, focus[i-1].Score, focus[i].Score)
	}
}

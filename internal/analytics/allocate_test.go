package analytics

import (
	"testing"

	"github.com/natbrooks/orbit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateEffort_RejectsEmptyAndOversizedSelections(t *testing.T) {
	assert.Nil(t, AllocateEffort(nil, 10, testNow))

	three := []domain.Deliverable{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	assert.Nil(t, AllocateEffort(three, 10, testNow))
}

func TestAllocateEffort_SingleItemCappedByRemaining(t *testing.T) {
	d := domain.Deliverable{
		ID: "d1", Title: "Lab report", Status: domain.StatusInProgress,
		DueDate: due(2), EstimatedHours: 4, GradeWeight: 15,
	}

	plan := AllocateEffort([]domain.Deliverable{d}, 10, testNow)
	require.NotNil(t, plan)

	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, 4.0, plan.Allocations[0].RecommendedHours)
	assert.Contains(t, plan.Allocations[0].Reasoning, "urgent")
	assert.Equal(t, 4.0, plan.TotalHours)
}

func TestAllocateEffort_SingleOverdueItem(t *testing.T) {
	d := domain.Deliverable{
		ID: "d1", Title: "Essay", Status: domain.StatusIncomplete,
		DueDate: due(-3), EstimatedHours: 12, GradeWeight: 30,
	}

	plan := AllocateEffort([]domain.Deliverable{d}, 8, testNow)
	require.NotNil(t, plan)

	assert.Equal(t, 8.0, plan.Allocations[0].RecommendedHours)
	assert.Equal(t, "Overdue and worth 30% - highest priority", plan.Allocations[0].Reasoning)
}

func TestAllocateEffort_OverdueItemGetsMoreHours(t *testing.T) {
	overdue := domain.Deliverable{
		ID: "late", Title: "Late project", Status: domain.StatusIncomplete,
		DueDate: due(-2), EstimatedHours: 8, GradeWeight: 30,
	}
	distant := domain.Deliverable{
		ID: "far", Title: "Far assignment", Status: domain.StatusIncomplete,
		DueDate: due(10), EstimatedHours: 8, GradeWeight: 30,
	}

	plan := AllocateEffort([]domain.Deliverable{distant, overdue}, 10, testNow)
	require.NotNil(t, plan)
	require.Len(t, plan.Allocations, 2)

	// Overdue urgency doubles its priority, so it sorts first and takes
	// the larger share: 7h vs 3h.
	assert.Equal(t, "late", plan.Allocations[0].DeliverableID)
	assert.Equal(t, 7.0, plan.Allocations[0].RecommendedHours)
	assert.Equal(t, 3.0, plan.Allocations[1].RecommendedHours)
	assert.Contains(t, plan.Allocations[0].Reasoning, "highest priority")

	assert.GreaterOrEqual(t, plan.Allocations[0].RecommendedHours, 2.0)
	assert.GreaterOrEqual(t, plan.Allocations[1].RecommendedHours, 2.0)
	assert.LessOrEqual(t, plan.TotalHours, 10.0)
}

func TestAllocateEffort_LeftoverFlowsToUnsaturatedItem(t *testing.T) {
	a := domain.Deliverable{
		ID: "a", Title: "Big one", Status: domain.StatusIncomplete,
		DueDate: due(1), EstimatedHours: 6, GradeWeight: 40,
	}
	b := domain.Deliverable{
		ID: "b", Title: "Small one", Status: domain.StatusIncomplete,
		DueDate: due(6), EstimatedHours: 3, GradeWeight: 10,
	}

	plan := AllocateEffort([]domain.Deliverable{a, b}, 12, testNow)
	require.NotNil(t, plan)

	// a saturates at its 6h of remaining work; the leftover pool tops up b
	// to its own 3h cap, and the rest stays unallocated.
	assert.Equal(t, "a", plan.Allocations[0].DeliverableID)
	assert.Equal(t, 6.0, plan.Allocations[0].RecommendedHours)
	assert.Equal(t, 3.0, plan.Allocations[1].RecommendedHours)
	assert.Equal(t, 9.0, plan.TotalHours)
}

func TestAllocateEffort_ZeroWeightsSplitEvenly(t *testing.T) {
	a := domain.Deliverable{ID: "a", Title: "One", Status: domain.StatusIncomplete, DueDate: due(2), EstimatedHours: 10}
	b := domain.Deliverable{ID: "b", Title: "Two", Status: domain.StatusIncomplete, DueDate: due(2), EstimatedHours: 10}

	plan := AllocateEffort([]domain.Deliverable{a, b}, 10, testNow)
	require.NotNil(t, plan)

	assert.Equal(t, 5.0, plan.Allocations[0].RecommendedHours)
	assert.Equal(t, 5.0, plan.Allocations[1].RecommendedHours)
}

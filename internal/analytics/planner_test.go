package analytics

import (
	"testing"

	"github.com/natbrooks/orbit/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedulePlan_FillsTwoWorkBlocksPerDay(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Project", Status: domain.StatusInProgress, DueDate: due(2), EstimatedHours: 20, GradeWeight: 30},
		{ID: "d2", Title: "Problem set", Status: domain.StatusIncomplete, DueDate: due(5), EstimatedHours: 10, GradeWeight: 15},
	}

	plan := BuildSchedulePlan(items, 28, nil, testNow)

	require.Len(t, plan.Days, 7)
	require.Len(t, plan.TopPriorities, 2)
	assert.Equal(t, "d1", plan.TopPriorities[0].DeliverableID)

	// 4h/day splits into two 2h work blocks, leaving no room for a break.
	// Textual time sorting puts the "2:00 PM" afternoon slot first.
	day := plan.Days[0]
	assert.Equal(t, 4.0, day.AvailableHours)
	require.Len(t, day.Blocks, 2)
	assert.Equal(t, PlanBlockWork, day.Blocks[0].Type)
	assert.Equal(t, 2.0, day.Blocks[0].Hours)
	assert.Equal(t, "d2", day.Blocks[0].DeliverableID)
	assert.Equal(t, "d1", day.Blocks[1].DeliverableID)

	assert.InDelta(t, 28.0, plan.TotalHoursAllocated, 1e-9)
}

func TestBuildSchedulePlan_PrioritiesComputedOnceForWholeWeek(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Project", Status: domain.StatusIncomplete, DueDate: due(1), EstimatedHours: 8, GradeWeight: 30},
	}

	plan := BuildSchedulePlan(items, 14, nil, testNow)

	// d1 is due tomorrow, but every later day still schedules it: the
	// top-3 list is not re-ranked per day.
	for _, day := range plan.Days {
		for _, b := range day.Blocks {
			if b.Type == PlanBlockWork {
				assert.Equal(t, "d1", b.DeliverableID)
			}
		}
	}
}

func TestBuildSchedulePlan_ClassBlocksReduceAvailability(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Essay", Status: domain.StatusIncomplete, DueDate: due(3), EstimatedHours: 12, GradeWeight: 20},
	}
	weekday := int(DayOf(testNow).Weekday())
	blocks := []domain.ScheduleBlock{
		{DayOfWeek: weekday, StartTime: "10:00", EndTime: "12:00", Type: domain.BlockClass},
	}

	plan := BuildSchedulePlan(items, 28, blocks, testNow)

	day := plan.Days[0]
	assert.Equal(t, 2.0, day.AvailableHours) // 4h daily minus 2h class

	var classBlocks, workBlocks int
	for _, b := range day.Blocks {
		switch b.Type {
		case PlanBlockClass:
			classBlocks++
			assert.Equal(t, "10:00 - 12:00", b.Time)
			assert.Equal(t, 2.0, b.Hours)
		case PlanBlockWork:
			workBlocks++
		}
	}
	assert.Equal(t, 1, classBlocks)
	assert.Equal(t, 2, workBlocks)

	// Other days have no class on their weekday.
	assert.Equal(t, 4.0, plan.Days[1].AvailableHours)
}

func TestBuildSchedulePlan_NegativeAvailabilityPropagates(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Essay", Status: domain.StatusIncomplete, DueDate: due(3), EstimatedHours: 12, GradeWeight: 20},
	}
	weekday := int(DayOf(testNow).Weekday())
	blocks := []domain.ScheduleBlock{
		{DayOfWeek: weekday, StartTime: "09:00", EndTime: "12:00", Type: domain.BlockClass},
	}

	// 7h/week is 1h/day; a 3h class overdraws the day.
	plan := BuildSchedulePlan(items, 7, blocks, testNow)

	day := plan.Days[0]
	assert.Equal(t, -2.0, day.AvailableHours)
	for _, b := range day.Blocks {
		assert.NotEqual(t, PlanBlockWork, b.Type)
		assert.NotEqual(t, PlanBlockBreak, b.Type)
	}
}

func TestBuildSchedulePlan_BreakWhenSlackRemains(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Reading", Status: domain.StatusIncomplete, DueDate: due(4), EstimatedHours: 2, GradeWeight: 10},
	}

	// 56h/week is 8h/day; one priority fills a single 3h-capped block,
	// leaving 5h of slack and a scheduled break.
	plan := BuildSchedulePlan(items, 56, nil, testNow)

	day := plan.Days[0]
	var types []PlanBlockType
	for _, b := range day.Blocks {
		types = append(types, b.Type)
	}
	assert.Contains(t, types, PlanBlockWork)
	assert.Contains(t, types, PlanBlockBreak)

	for _, b := range day.Blocks {
		if b.Type == PlanBlockWork {
			assert.LessOrEqual(t, b.Hours, 3.0)
		}
	}
}

func TestBuildSchedulePlan_ExcludesSubmittedAndGraded(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Done", Status: domain.StatusSubmitted, DueDate: due(1), EstimatedHours: 5, GradeWeight: 30},
		{ID: "d2", Title: "Graded", Status: domain.StatusGraded, DueDate: due(1), EstimatedHours: 5, GradeWeight: 30},
	}

	plan := BuildSchedulePlan(items, 28, nil, testNow)

	assert.Empty(t, plan.TopPriorities)
	for _, day := range plan.Days {
		for _, b := range day.Blocks {
			assert.NotEqual(t, PlanBlockWork, b.Type)
		}
	}
}

func TestBuildSchedulePlan_BlocksSortedByTextualStartTime(t *testing.T) {
	items := []domain.Deliverable{
		{ID: "d1", Title: "Project", Status: domain.StatusIncomplete, DueDate: due(2), EstimatedHours: 20, GradeWeight: 30},
		{ID: "d2", Title: "Reading", Status: domain.StatusIncomplete, DueDate: due(4), EstimatedHours: 10, GradeWeight: 10},
	}
	weekday := int(DayOf(testNow).Weekday())
	blocks := []domain.ScheduleBlock{
		{DayOfWeek: weekday, StartTime: "08:00", EndTime: "09:00", Type: domain.BlockClass},
	}

	plan := BuildSchedulePlan(items, 35, blocks, testNow)

	day := plan.Days[0]
	for i := 1; i < len(day.Blocks); i++ {
		assert.LessOrEqual(t, startTimeOf(day.Blocks[i-1].Time), startTimeOf(day.Blocks[i].Time))
	}
}

package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/natbrooks/orbit/internal/domain"
)

func TestRelativeDateFrom(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", RelativeDateFrom(now, now))
	assert.Equal(t, "Tomorrow", RelativeDateFrom(now.AddDate(0, 0, 1), now))
	assert.Equal(t, "Yesterday", RelativeDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "In 5d", RelativeDateFrom(now.AddDate(0, 0, 5), now))
	assert.Equal(t, "In 3w", RelativeDateFrom(now.AddDate(0, 0, 21), now))
	assert.Equal(t, "3d ago", RelativeDateFrom(now.AddDate(0, 0, -3), now))
	assert.Equal(t, "In 3mo", RelativeDateFrom(now.AddDate(0, 0, 90), now))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "4h", FormatHours(4))
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0h", FormatHours(0))
}

func TestRenderScoreBar_ClampsAndColors(t *testing.T) {
	assert.Contains(t, RenderScoreBar(84, 10), " 84")
	assert.Contains(t, RenderScoreBar(-10, 10), "  0")
	assert.Contains(t, RenderScoreBar(150, 10), "100")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "DUE"},
		[][]string{{"Essay", "Tomorrow"}, {"Problem Set 3", "In 5d"}},
	)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Essay")
	assert.Contains(t, out, "Problem Set 3")
}

func TestFormatCourseList(t *testing.T) {
	target := 90.0
	courses := []*domain.Course{
		{ID: "c-1", Name: "Algorithms", Code: "CS301", TargetGrade: &target,
			ScheduleBlocks: []domain.ScheduleBlock{{DayOfWeek: 1, StartTime: "10:00", EndTime: "12:00"}}},
		{ID: "c-2", Name: "Chemistry", Code: "CHEM101"},
	}

	out := FormatCourseList(courses)
	assert.Contains(t, out, "CS301")
	assert.Contains(t, out, "90%")
	assert.Contains(t, out, "1 block(s)/week")
	assert.Contains(t, out, "Chemistry")
	assert.Contains(t, out, "none")
}

func TestFormatDeliverableList(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	grade := 88.0
	items := []*domain.Deliverable{
		{ID: "d-1", CourseID: "c-1", Title: "Midterm", DueDate: now.AddDate(0, 0, -7),
			Status: domain.StatusGraded, EstimatedHours: 6, GradeWeight: 40, ActualGrade: &grade},
		{ID: "d-2", CourseID: "c-1", Title: "Final", DueDate: now.AddDate(0, 0, 10),
			Status: domain.StatusIncomplete, EstimatedHours: 12, GradeWeight: 60},
	}

	out := FormatDeliverableList(items, map[string]string{"c-1": "CS301"}, now)
	assert.Contains(t, out, "Midterm")
	assert.Contains(t, out, "88.0%")
	assert.Contains(t, out, "CS301")
	assert.Contains(t, out, "In 10d")
}

func TestFormatSettings(t *testing.T) {
	out := FormatSettings(&domain.Settings{WeeklyBudgetHours: 25, DefaultTargetGrade: 85})
	assert.Contains(t, out, "25h")
	assert.Contains(t, out, "85%")
}

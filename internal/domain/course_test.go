package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourse_TargetOrDefault(t *testing.T) {
	c := &Course{}
	assert.Equal(t, DefaultTargetGrade, c.TargetOrDefault())

	c.TargetGrade = FloatPtr(92)
	assert.Equal(t, 92.0, c.TargetOrDefault())
}

func TestScheduleBlock_Hours(t *testing.T) {
	b := &ScheduleBlock{StartTime: "09:00", EndTime: "10:30"}
	assert.InDelta(t, 1.5, b.Hours(), 1e-9)

	b = &ScheduleBlock{StartTime: "14:15", EndTime: "14:45"}
	assert.InDelta(t, 0.5, b.Hours(), 1e-9)
}

func TestScheduleBlock_Hours_Unparseable(t *testing.T) {
	b := &ScheduleBlock{StartTime: "morning", EndTime: "10:00"}
	assert.Equal(t, 0.0, b.Hours())

	b = &ScheduleBlock{StartTime: "9:00", EndTime: ""}
	assert.Equal(t, 0.0, b.Hours())
}

func TestMigrateLegacyStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want DeliverableStatus
	}{
		{"not_started", StatusIncomplete},
		{"overdue", StatusIncomplete},
		{"in_progress", StatusInProgress},
		{"completed", StatusSubmitted},
		{"incomplete", StatusIncomplete},
		{"submitted", StatusSubmitted},
		{"graded", StatusGraded},
		{"", StatusIncomplete},
		{"garbage", StatusIncomplete},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MigrateLegacyStatus(tc.raw), "raw %q", tc.raw)
	}
}

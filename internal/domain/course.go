package domain

import (
	"strconv"
	"strings"
	"time"
)

// DefaultTargetGrade is assumed when a course has no explicit target.
const DefaultTargetGrade = 85.0

type Course struct {
	ID    string
	Name  string
	Code  string
	Color string

	TargetGrade    *float64
	ScheduleBlocks []ScheduleBlock

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TargetOrDefault returns the course target grade, or DefaultTargetGrade
// when none is set.
func (c *Course) TargetOrDefault() float64 {
	return Float64FromPtrWithDefault(DefaultTargetGrade, c.TargetGrade)
}

// ScheduleBlock is a fixed weekly time commitment attached to a course.
type ScheduleBlock struct {
	ID        string
	CourseID  string
	DayOfWeek int // 0 = Sunday .. 6 = Saturday
	StartTime string
	EndTime   string // "HH:MM", 24-hour
	Type      BlockType
}

// Hours returns the block duration in hours, or 0 when either time fails
// to parse.
func (b *ScheduleBlock) Hours() float64 {
	start, okStart := parseClockMinutes(b.StartTime)
	end, okEnd := parseClockMinutes(b.EndTime)
	if !okStart || !okEnd {
		return 0
	}
	return float64(end-start) / 60.0
}

// parseClockMinutes parses "HH:MM" into minutes past midnight.
func parseClockMinutes(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}

package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/natbrooks/orbit/internal/domain"
)

// Course options
type CourseOption func(*domain.Course)

func WithCourseCode(code string) CourseOption {
	return func(c *domain.Course) {
		c.Code = code
	}
}

func WithCourseColor(color string) CourseOption {
	return func(c *domain.Course) {
		c.Color = color
	}
}

func WithCourseTarget(target float64) CourseOption {
	return func(c *domain.Course) {
		c.TargetGrade = &target
	}
}

func WithScheduleBlock(dayOfWeek int, start, end string, blockType domain.BlockType) CourseOption {
	return func(c *domain.Course) {
		c.ScheduleBlocks = append(c.ScheduleBlocks, domain.ScheduleBlock{
			ID:        uuid.New().String(),
			CourseID:  c.ID,
			DayOfWeek: dayOfWeek,
			StartTime: start,
			EndTime:   end,
			Type:      blockType,
		})
	}
}

func NewTestCourse(name string, opts ...CourseOption) *domain.Course {
	now := time.Now().UTC()
	c := &domain.Course{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Deliverable options
type DeliverableOption func(*domain.Deliverable)

func WithStatus(s domain.DeliverableStatus) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.Status = s
	}
}

func WithPriority(p domain.Priority) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.Priority = p
	}
}

func WithDueDate(due time.Time) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.DueDate = due
	}
}

func WithEstimatedHours(h float64) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.EstimatedHours = h
	}
}

func WithGradeWeight(w float64) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.GradeWeight = w
	}
}

func WithActualGrade(g float64) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.ActualGrade = &g
		d.Status = domain.StatusGraded
	}
}

func WithTargetGrade(g float64) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.TargetGrade = &g
	}
}

func WithRiskLevel(r domain.RiskLevel) DeliverableOption {
	return func(d *domain.Deliverable) {
		d.RiskLevel = r
	}
}

func NewTestDeliverable(courseID, title string, opts ...DeliverableOption) *domain.Deliverable {
	now := time.Now().UTC()
	d := &domain.Deliverable{
		ID:             uuid.New().String(),
		CourseID:       courseID,
		Title:          title,
		DueDate:        now.AddDate(0, 0, 7),
		Status:         domain.StatusIncomplete,
		Priority:       domain.PriorityMedium,
		EstimatedHours: 4,
		GradeWeight:    10,
		RiskLevel:      domain.RiskLow,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

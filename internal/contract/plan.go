package contract

import (
	"time"

	"github.com/natbrooks/orbit/internal/analytics"
)

type PlanRequest struct {
	CourseID string
	Now      *time.Time
}

type PlanResponse struct {
	CourseName   string
	WeeklyBudget float64
	Plan         analytics.SchedulePlan
}

type PlanErrorCode string

const (
	PlanErrCourseNotFound PlanErrorCode = "COURSE_NOT_FOUND"
	PlanErrNoBudget       PlanErrorCode = "NO_BUDGET"
	PlanErrInternal       PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}

package contract

import (
	"time"

	"github.com/natbrooks/orbit/internal/analytics"
)

type TargetSimRequest struct {
	CourseID    string
	TargetFinal float64
	Now         *time.Time
}

type TargetSimResponse struct {
	CourseName string
	Result     analytics.GradeWhatIfResult
}

type ScoreSimRequest struct {
	CourseID      string
	DeliverableID string
	Score         float64
	TargetFinal   float64
	Now           *time.Time
}

type ScoreSimResponse struct {
	CourseName string
	Result     analytics.ScoreOnItemResult
}

type DropSimRequest struct {
	CourseID string
	Now      *time.Time
}

type DropSimResponse struct {
	CourseName string
	Result     analytics.DropLowestResult
}

type AllocateRequest struct {
	DeliverableIDs []string
	AvailableHours float64
	Now            *time.Time
}

type AllocateResponse struct {
	Plan analytics.EffortPlan
}

type SimulatorErrorCode string

const (
	SimErrCourseNotFound   SimulatorErrorCode = "COURSE_NOT_FOUND"
	SimErrNoDeliverables   SimulatorErrorCode = "NO_DELIVERABLES"
	SimErrItemNotFound     SimulatorErrorCode = "ITEM_NOT_FOUND"
	SimErrNoGradedItems    SimulatorErrorCode = "NO_GRADED_ITEMS"
	SimErrInvalidSelection SimulatorErrorCode = "INVALID_SELECTION"
	SimErrInvalidHours     SimulatorErrorCode = "INVALID_HOURS"
	SimErrInvalidTarget    SimulatorErrorCode = "INVALID_TARGET"
	SimErrInvalidScore     SimulatorErrorCode = "INVALID_SCORE"
	SimErrInternal         SimulatorErrorCode = "INTERNAL_ERROR"
)

type SimulatorError struct {
	Code    SimulatorErrorCode
	Message string
}

func (e *SimulatorError) Error() string {
	return string(e.Code) + ": " + e.Message
}

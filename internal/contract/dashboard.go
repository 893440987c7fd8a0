package contract

import (
	"time"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/domain"
)

// DashboardRequest scopes the dashboard to one course or, with an empty
// CourseID, the whole workspace. Now overrides the clock for determinism.
type DashboardRequest struct {
	CourseID string
	Now      *time.Time
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{}
}

// CourseGradeView is the per-course grade tracking block of the dashboard.
type CourseGradeView struct {
	CourseID       string
	CourseName     string
	CourseCode     string
	TargetGrade    float64
	CurrentAverage float64
	WeightCovered  float64
	ProjectedFinal float64
	Status         domain.TrackingStatus
	NextGradeHint  string
}

type DashboardResponse struct {
	GeneratedAt     time.Time
	Health          analytics.HealthResult
	Overload        analytics.OverloadResult
	Focus           []analytics.FocusItem
	Workload        []analytics.WorkloadDay
	GradeProjection []analytics.GradeProjectionDay
	Courses         []CourseGradeView
	NextDeadline    *domain.Deliverable
	AtRisk          []domain.Deliverable
	HoursDueSoon    float64
	WeeklyBudget    float64
}

type DashboardErrorCode string

const (
	DashboardErrCourseNotFound DashboardErrorCode = "COURSE_NOT_FOUND"
	DashboardErrInternal       DashboardErrorCode = "INTERNAL_ERROR"
)

type DashboardError struct {
	Code    DashboardErrorCode
	Message string
}

func (e *DashboardError) Error() string {
	return string(e.Code) + ": " + e.Message
}

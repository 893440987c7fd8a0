package domain

import "time"

type Deliverable struct {
	ID       string
	CourseID string
	Title    string

	// DueDate carries day granularity only; callers compare against a
	// midnight-normalized clock.
	DueDate time.Time

	Status   DeliverableStatus
	Priority Priority

	EstimatedHours float64
	GradeWeight    float64

	TargetGrade *float64
	ActualGrade *float64
	// CurrentGrade is the deprecated predecessor of ActualGrade, kept for
	// records written before the rename. Read through Grade().
	CurrentGrade *float64

	RiskLevel RiskLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Grade returns the recorded grade, preferring ActualGrade over the legacy
// CurrentGrade field. Nil when neither is present.
func (d *Deliverable) Grade() *float64 {
	return CoalesceFloatPtr(d.ActualGrade, d.CurrentGrade)
}

// HasGrade reports whether a grade has been recorded, regardless of status.
func (d *Deliverable) HasGrade() bool {
	return d.Grade() != nil
}

// GradeValue returns the recorded grade or 0 when none is present.
func (d *Deliverable) GradeValue() float64 {
	return Float64FromPtrWithDefault(0, d.ActualGrade, d.CurrentGrade)
}

// RemainingHours returns the effort still owed: zero once the work is
// submitted or graded, the full estimate otherwise.
func (d *Deliverable) RemainingHours() float64 {
	if d.Status == StatusSubmitted || d.Status == StatusGraded {
		return 0
	}
	return d.EstimatedHours
}

// IsActive reports whether the deliverable still counts toward workload
// views (anything not yet graded).
func (d *Deliverable) IsActive() bool {
	return d.Status != StatusGraded
}

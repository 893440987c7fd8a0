package service_test

import (
	"context"
	"testing"

	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
	"github.com/natbrooks/orbit/internal/service"
	"github.com/natbrooks/orbit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deliverableFixture struct {
	svc     service.DeliverableService
	repo    repository.DeliverableRepo
	courses repository.CourseRepo
	course  *domain.Course
}

func newDeliverableFixture(t *testing.T) deliverableFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	courses := repository.NewSQLiteCourseRepo(database)
	repo := repository.NewSQLiteDeliverableRepo(database)

	course := testutil.NewTestCourse("Algorithms")
	require.NoError(t, courses.Create(context.Background(), course))

	return deliverableFixture{
		svc:     service.NewDeliverableService(repo, courses),
		repo:    repo,
		courses: courses,
		course:  course,
	}
}

func TestDeliverableService_Create_DefaultsAndValidation(t *testing.T) {
	f := newDeliverableFixture(t)
	ctx := context.Background()

	d := &domain.Deliverable{
		CourseID:       f.course.ID,
		Title:          "Problem set 1",
		DueDate:        f.course.CreatedAt.AddDate(0, 0, 7),
		EstimatedHours: 5,
		GradeWeight:    10,
	}
	require.NoError(t, f.svc.Create(ctx, d))

	got, err := f.repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusIncomplete, got.Status)
	assert.Equal(t, domain.PriorityMedium, got.Priority)
	assert.Equal(t, domain.RiskLow, got.RiskLevel)
}

func TestDeliverableService_Create_UnknownCourse(t *testing.T) {
	f := newDeliverableFixture(t)

	d := &domain.Deliverable{CourseID: "missing", Title: "Orphan", DueDate: f.course.CreatedAt}
	err := f.svc.Create(context.Background(), d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "course not found")
}

func TestDeliverableService_RecordGrade(t *testing.T) {
	f := newDeliverableFixture(t)
	ctx := context.Background()

	d := testutil.NewTestDeliverable(f.course.ID, "Midterm")
	require.NoError(t, f.repo.Create(ctx, d))

	require.NoError(t, f.svc.RecordGrade(ctx, d.ID, 91.5))

	got, err := f.repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGraded, got.Status)
	require.NotNil(t, got.ActualGrade)
	assert.Equal(t, 91.5, *got.ActualGrade)
}

func TestDeliverableService_RecordGrade_OutOfRange(t *testing.T) {
	f := newDeliverableFixture(t)
	ctx := context.Background()

	d := testutil.NewTestDeliverable(f.course.ID, "Midterm")
	require.NoError(t, f.repo.Create(ctx, d))

	assert.Error(t, f.svc.RecordGrade(ctx, d.ID, -1))
	assert.Error(t, f.svc.RecordGrade(ctx, d.ID, 101))
}

func TestDeliverableService_SetStatus(t *testing.T) {
	f := newDeliverableFixture(t)
	ctx := context.Background()

	d := testutil.NewTestDeliverable(f.course.ID, "Essay")
	require.NoError(t, f.repo.Create(ctx, d))

	require.NoError(t, f.svc.SetStatus(ctx, d.ID, domain.StatusSubmitted))
	got, err := f.repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSubmitted, got.Status)

	err = f.svc.SetStatus(ctx, d.ID, "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestDeliverableService_Delete_Missing(t *testing.T) {
	f := newDeliverableFixture(t)

	err := f.svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliverable not found")
}

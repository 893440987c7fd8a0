package service_test

import (
	"context"
	"testing"

	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
	"github.com/natbrooks/orbit/internal/service"
	"github.com/natbrooks/orbit/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type simulatorFixture struct {
	svc          service.SimulatorService
	deliverables repository.DeliverableRepo
	course       *domain.Course
}

func newSimulatorFixture(t *testing.T) simulatorFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	courses := repository.NewSQLiteCourseRepo(database)
	deliverables := repository.NewSQLiteDeliverableRepo(database)

	course := testutil.NewTestCourse("Statistics")
	require.NoError(t, courses.Create(context.Background(), course))

	return simulatorFixture{
		svc:          service.NewSimulatorService(courses, deliverables),
		deliverables: deliverables,
		course:       course,
	}
}

func TestSimulatorService_SimulateTarget(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Quiz",
		testutil.WithGradeWeight(40), testutil.WithActualGrade(90))))
	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Final",
		testutil.WithGradeWeight(60))))

	resp, err := f.svc.SimulateTarget(ctx, contract.TargetSimRequest{CourseID: f.course.ID, TargetFinal: 85})
	require.NoError(t, err)

	assert.Equal(t, "Statistics", resp.CourseName)
	assert.InDelta(t, 75.0, resp.Result.NeededAvgOnRemaining, 1e-9)
	assert.Equal(t, 40.0, resp.Result.WeightCovered)
	assert.Equal(t, 60.0, resp.Result.WeightRemaining)
}

func TestSimulatorService_SimulateTarget_EmptyCourse(t *testing.T) {
	f := newSimulatorFixture(t)

	_, err := f.svc.SimulateTarget(context.Background(), contract.TargetSimRequest{CourseID: f.course.ID, TargetFinal: 85})
	require.Error(t, err)

	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrNoDeliverables, simErr.Code)
}

func TestSimulatorService_SimulateTarget_InvalidTarget(t *testing.T) {
	f := newSimulatorFixture(t)

	_, err := f.svc.SimulateTarget(context.Background(), contract.TargetSimRequest{CourseID: f.course.ID, TargetFinal: 130})
	require.Error(t, err)

	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrInvalidTarget, simErr.Code)
}

func TestSimulatorService_SimulateTarget_CourseNotFound(t *testing.T) {
	f := newSimulatorFixture(t)

	_, err := f.svc.SimulateTarget(context.Background(), contract.TargetSimRequest{CourseID: "missing", TargetFinal: 85})
	require.Error(t, err)

	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrCourseNotFound, simErr.Code)
}

func TestSimulatorService_SimulateScore(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Quiz",
		testutil.WithGradeWeight(40), testutil.WithActualGrade(90))))
	final := testutil.NewTestDeliverable(f.course.ID, "Final", testutil.WithGradeWeight(60))
	require.NoError(t, f.deliverables.Create(ctx, final))

	resp, err := f.svc.SimulateScore(ctx, contract.ScoreSimRequest{
		CourseID:      f.course.ID,
		DeliverableID: final.ID,
		Score:         70,
		TargetFinal:   85,
	})
	require.NoError(t, err)

	// (90*40 + 70*60) / 100
	assert.InDelta(t, 78.0, resp.Result.ResultingFinalGrade, 1e-9)
}

func TestSimulatorService_SimulateScore_ItemNotFound(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Quiz",
		testutil.WithGradeWeight(40), testutil.WithActualGrade(90))))

	_, err := f.svc.SimulateScore(ctx, contract.ScoreSimRequest{
		CourseID:      f.course.ID,
		DeliverableID: "missing",
		Score:         70,
		TargetFinal:   85,
	})
	require.Error(t, err)

	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrItemNotFound, simErr.Code)
}

func TestSimulatorService_SimulateDropLowest(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Quiz 1",
		testutil.WithGradeWeight(20), testutil.WithActualGrade(60))))
	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Quiz 2",
		testutil.WithGradeWeight(20), testutil.WithActualGrade(95))))

	resp, err := f.svc.SimulateDropLowest(ctx, contract.DropSimRequest{CourseID: f.course.ID})
	require.NoError(t, err)

	require.NotNil(t, resp.Result.Dropped)
	assert.Equal(t, "Quiz 1", resp.Result.Dropped.Title)
	assert.InDelta(t, 95.0, resp.Result.NewFinalGrade, 1e-9)
}

func TestSimulatorService_SimulateDropLowest_NoGrades(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	require.NoError(t, f.deliverables.Create(ctx, testutil.NewTestDeliverable(f.course.ID, "Final",
		testutil.WithGradeWeight(60))))

	_, err := f.svc.SimulateDropLowest(ctx, contract.DropSimRequest{CourseID: f.course.ID})
	require.Error(t, err)

	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrNoGradedItems, simErr.Code)
}

func TestSimulatorService_AllocateEffort(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	a := testutil.NewTestDeliverable(f.course.ID, "Overdue lab",
		testutil.WithDueDate(fixedNow.AddDate(0, 0, -2)),
		testutil.WithEstimatedHours(8),
		testutil.WithGradeWeight(30))
	b := testutil.NewTestDeliverable(f.course.ID, "Reading",
		testutil.WithDueDate(fixedNow.AddDate(0, 0, 10)),
		testutil.WithEstimatedHours(6),
		testutil.WithGradeWeight(30))
	require.NoError(t, f.deliverables.Create(ctx, a))
	require.NoError(t, f.deliverables.Create(ctx, b))

	resp, err := f.svc.AllocateEffort(ctx, contract.AllocateRequest{
		DeliverableIDs: []string{a.ID, b.ID},
		AvailableHours: 10,
		Now:            &fixedNow,
	})
	require.NoError(t, err)

	require.Len(t, resp.Plan.Allocations, 2)
	var overdueHours, otherHours float64
	for _, alloc := range resp.Plan.Allocations {
		if alloc.DeliverableID == a.ID {
			overdueHours = alloc.RecommendedHours
		} else {
			otherHours = alloc.RecommendedHours
		}
	}
	assert.Greater(t, overdueHours, otherHours)
	assert.LessOrEqual(t, resp.Plan.TotalHours, 10.0)
}

func TestSimulatorService_AllocateEffort_Validation(t *testing.T) {
	f := newSimulatorFixture(t)
	ctx := context.Background()

	_, err := f.svc.AllocateEffort(ctx, contract.AllocateRequest{AvailableHours: 10})
	var simErr *contract.SimulatorError
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrInvalidSelection, simErr.Code)

	_, err = f.svc.AllocateEffort(ctx, contract.AllocateRequest{
		DeliverableIDs: []string{"a", "b", "c"},
		AvailableHours: 10,
	})
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrInvalidSelection, simErr.Code)

	_, err = f.svc.AllocateEffort(ctx, contract.AllocateRequest{
		DeliverableIDs: []string{"a"},
		AvailableHours: 0,
	})
	require.ErrorAs(t, err, &simErr)
	assert.Equal(t, contract.SimErrInvalidHours, simErr.Code)
}

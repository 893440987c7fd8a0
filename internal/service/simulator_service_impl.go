package service

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
)

type simulatorService struct {
	courses      repository.CourseRepo
	deliverables repository.DeliverableRepo
}

func NewSimulatorService(courses repository.CourseRepo, deliverables repository.DeliverableRepo) SimulatorService {
	return &simulatorService{courses: courses, deliverables: deliverables}
}

func (s *simulatorService) loadCourseItems(ctx context.Context, courseID string) (*domain.Course, []domain.Deliverable, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	if course == nil {
		return nil, nil, &contract.SimulatorError{
			Code:    contract.SimErrCourseNotFound,
			Message: "no course with id " + courseID,
		}
	}
	items, err := s.deliverables.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	return course, derefDeliverables(items), nil
}

func (s *simulatorService) SimulateTarget(ctx context.Context, req contract.TargetSimRequest) (*contract.TargetSimResponse, error) {
	if req.TargetFinal < 0 || req.TargetFinal > 100 {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrInvalidTarget,
			Message: fmt.Sprintf("target must be between 0 and 100, got %.1f", req.TargetFinal),
		}
	}

	course, items, err := s.loadCourseItems(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	result := analytics.GradeWhatIf(items, req.TargetFinal)
	if result == nil {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrNoDeliverables,
			Message: "course has no deliverables to simulate",
		}
	}
	return &contract.TargetSimResponse{CourseName: course.Name, Result: *result}, nil
}

func (s *simulatorService) SimulateScore(ctx context.Context, req contract.ScoreSimRequest) (*contract.ScoreSimResponse, error) {
	if req.Score < 0 || req.Score > 100 {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrInvalidScore,
			Message: fmt.Sprintf("score must be between 0 and 100, got %.1f", req.Score),
		}
	}

	course, items, err := s.loadCourseItems(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	result := analytics.ScoreOnItem(items, req.DeliverableID, req.Score, req.TargetFinal)
	if !result.ItemFound {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrItemNotFound,
			Message: "no deliverable with id " + req.DeliverableID + " in course " + course.Name,
		}
	}
	return &contract.ScoreSimResponse{CourseName: course.Name, Result: result}, nil
}

func (s *simulatorService) SimulateDropLowest(ctx context.Context, req contract.DropSimRequest) (*contract.DropSimResponse, error) {
	course, items, err := s.loadCourseItems(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	result := analytics.DropLowest(items)
	if result.Dropped == nil {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrNoGradedItems,
			Message: "course has no graded deliverables to drop",
		}
	}
	return &contract.DropSimResponse{CourseName: course.Name, Result: result}, nil
}

func (s *simulatorService) AllocateEffort(ctx context.Context, req contract.AllocateRequest) (*contract.AllocateResponse, error) {
	if len(req.DeliverableIDs) == 0 || len(req.DeliverableIDs) > 2 {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrInvalidSelection,
			Message: fmt.Sprintf("select 1 or 2 deliverables, got %d", len(req.DeliverableIDs)),
		}
	}
	if req.AvailableHours <= 0 {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrInvalidHours,
			Message: fmt.Sprintf("available hours must be positive, got %.1f", req.AvailableHours),
		}
	}

	selected := make([]domain.Deliverable, 0, len(req.DeliverableIDs))
	for _, id := range req.DeliverableIDs {
		d, err := s.deliverables.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if d == nil {
			return nil, &contract.SimulatorError{
				Code:    contract.SimErrItemNotFound,
				Message: "no deliverable with id " + id,
			}
		}
		selected = append(selected, *d)
	}

	now := resolveNow(req.Now)
	plan := analytics.AllocateEffort(selected, req.AvailableHours, now)
	if plan == nil {
		return nil, &contract.SimulatorError{
			Code:    contract.SimErrInvalidSelection,
			Message: "allocation rejected for the given selection",
		}
	}
	return &contract.AllocateResponse{Plan: *plan}, nil
}

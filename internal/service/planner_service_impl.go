package service

import (
	"context"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/repository"
)

type plannerService struct {
	courses      repository.CourseRepo
	deliverables repository.DeliverableRepo
	settings     repository.SettingsRepo
}

func NewPlannerService(
	courses repository.CourseRepo,
	deliverables repository.DeliverableRepo,
	settings repository.SettingsRepo,
) PlannerService {
	return &plannerService{courses: courses, deliverables: deliverables, settings: settings}
}

func (s *plannerService) BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	course, err := s.courses.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrCourseNotFound,
			Message: "no course with id " + req.CourseID,
		}
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	weeklyBudget := weeklyBudgetOrDefault(settings)
	if weeklyBudget <= 0 {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrNoBudget,
			Message: "set a weekly hour budget before planning (orbit budget <hours>)",
		}
	}

	items, err := s.deliverables.ListByCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	now := resolveNow(req.Now)
	plan := analytics.BuildSchedulePlan(derefDeliverables(items), weeklyBudget, course.ScheduleBlocks, now)

	return &contract.PlanResponse{
		CourseName:   course.Name,
		WeeklyBudget: weeklyBudget,
		Plan:         plan,
	}, nil
}

package service

import (
	"context"
	"time"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
)

type dashboardService struct {
	courses      repository.CourseRepo
	deliverables repository.DeliverableRepo
	settings     repository.SettingsRepo
	observer     UseCaseObserver
}

func NewDashboardService(
	courses repository.CourseRepo,
	deliverables repository.DeliverableRepo,
	settings repository.SettingsRepo,
	observers ...UseCaseObserver,
) DashboardService {
	return &dashboardService{
		courses:      courses,
		deliverables: deliverables,
		settings:     settings,
		observer:     useCaseObserverOrNoop(observers),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, req contract.DashboardRequest) (resp *contract.DashboardResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"scope": "all"}
	if req.CourseID != "" {
		fields["scope"] = req.CourseID
	}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "dashboard",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := resolveNow(req.Now)

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	weeklyBudget := weeklyBudgetOrDefault(settings)
	defaultTarget := defaultTargetOrFallback(settings)

	var courses []*domain.Course
	if req.CourseID != "" {
		course, err := s.courses.GetByID(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			return nil, &contract.DashboardError{
				Code:    contract.DashboardErrCourseNotFound,
				Message: "no course with id " + req.CourseID,
			}
		}
		courses = []*domain.Course{course}
	} else {
		courses, err = s.courses.List(ctx)
		if err != nil {
			return nil, err
		}
	}

	var items []domain.Deliverable
	if req.CourseID != "" {
		scoped, err := s.deliverables.ListByCourse(ctx, req.CourseID)
		if err != nil {
			return nil, err
		}
		items = derefDeliverables(scoped)
	} else {
		all, err := s.deliverables.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		items = derefDeliverables(all)
	}

	byCourse := make(map[string][]domain.Deliverable)
	for _, d := range items {
		byCourse[d.CourseID] = append(byCourse[d.CourseID], d)
	}

	views := make([]contract.CourseGradeView, 0, len(courses))
	for _, course := range courses {
		courseItems := byCourse[course.ID]
		target := defaultTarget
		if course.TargetGrade != nil {
			target = *course.TargetGrade
		}

		avg := analytics.WeightedAverage(courseItems)
		projected := analytics.ProjectedFinal(courseItems, target)
		views = append(views, contract.CourseGradeView{
			CourseID:       course.ID,
			CourseName:     course.Name,
			CourseCode:     course.Code,
			TargetGrade:    target,
			CurrentAverage: avg.Average,
			WeightCovered:  avg.TotalWeight,
			ProjectedFinal: projected,
			Status:         analytics.TrackStatus(projected, target),
			NextGradeHint:  analytics.NextGradeHint(courseItems, target),
		})
	}

	return &contract.DashboardResponse{
		GeneratedAt:     now,
		Health:          analytics.ComputeHealth(items, weeklyBudget, now),
		Overload:        analytics.ComputeOverloadRisk(items, weeklyBudget, now),
		Focus:           analytics.TodaysFocus(items, now),
		Workload:        analytics.SevenDayWorkload(items, now),
		GradeProjection: analytics.SevenDayGradeProjection(items, defaultTarget, now),
		Courses:         views,
		NextDeadline:    analytics.NextDeadline(items, now),
		AtRisk:          analytics.OverdueAndAtRisk(items, now),
		HoursDueSoon:    analytics.HoursDueWithin7Days(items, now),
		WeeklyBudget:    weeklyBudget,
	}, nil
}

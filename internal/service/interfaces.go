package service

import (
	"context"

	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
)

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	Resolve(ctx context.Context, ref string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	SetBlocks(ctx context.Context, courseID string, blocks []domain.ScheduleBlock) error
	Delete(ctx context.Context, id string) error
}

type DeliverableService interface {
	Create(ctx context.Context, d *domain.Deliverable) error
	GetByID(ctx context.Context, id string) (*domain.Deliverable, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.Deliverable, error)
	ListAll(ctx context.Context) ([]*domain.Deliverable, error)
	Update(ctx context.Context, d *domain.Deliverable) error
	RecordGrade(ctx context.Context, id string, grade float64) error
	SetStatus(ctx context.Context, id string, status domain.DeliverableStatus) error
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	SetWeeklyBudget(ctx context.Context, hours float64) error
	SetDefaultTarget(ctx context.Context, target float64) error
}

type DashboardService interface {
	GetDashboard(ctx context.Context, req contract.DashboardRequest) (*contract.DashboardResponse, error)
}

type SimulatorService interface {
	SimulateTarget(ctx context.Context, req contract.TargetSimRequest) (*contract.TargetSimResponse, error)
	SimulateScore(ctx context.Context, req contract.ScoreSimRequest) (*contract.ScoreSimResponse, error)
	SimulateDropLowest(ctx context.Context, req contract.DropSimRequest) (*contract.DropSimResponse, error)
	AllocateEffort(ctx context.Context, req contract.AllocateRequest) (*contract.AllocateResponse, error)
}

type PlannerService interface {
	BuildPlan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

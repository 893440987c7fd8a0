package repository

import (
	"context"

	"github.com/natbrooks/orbit/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	GetByCode(ctx context.Context, code string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	ReplaceBlocks(ctx context.Context, courseID string, blocks []domain.ScheduleBlock) error
	Delete(ctx context.Context, id string) error
}

type DeliverableRepo interface {
	Create(ctx context.Context, d *domain.Deliverable) error
	GetByID(ctx context.Context, id string) (*domain.Deliverable, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.Deliverable, error)
	ListAll(ctx context.Context) ([]*domain.Deliverable, error)
	Update(ctx context.Context, d *domain.Deliverable) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}

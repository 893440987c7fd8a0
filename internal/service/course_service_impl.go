package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/natbrooks/orbit/internal/db"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
)

type courseService struct {
	courses repository.CourseRepo
	uow     db.UnitOfWork
}

func NewCourseService(courses repository.CourseRepo, uow db.UnitOfWork) CourseService {
	return &courseService{courses: courses, uow: uow}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	for i := range c.ScheduleBlocks {
		if c.ScheduleBlocks[i].ID == "" {
			c.ScheduleBlocks[i].ID = uuid.New().String()
		}
		c.ScheduleBlocks[i].CourseID = c.ID
	}

	// The course row and its schedule blocks land together or not at all.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCourseRepo(tx).Create(ctx, c)
	})
}

func (s *courseService) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// Resolve looks a course up by course code first, then by id, so CLI users
// can write "orbit plan CS301" as well as paste a full id.
func (s *courseService) Resolve(ctx context.Context, ref string) (*domain.Course, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty course reference")
	}
	c, err := s.courses.GetByCode(ctx, ref)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	return s.courses.GetByID(ctx, ref)
}

func (s *courseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.courses.List(ctx)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = time.Now().UTC()
	return s.courses.Update(ctx, c)
}

func (s *courseService) SetBlocks(ctx context.Context, courseID string, blocks []domain.ScheduleBlock) error {
	for i := range blocks {
		if blocks[i].ID == "" {
			blocks[i].ID = uuid.New().String()
		}
		blocks[i].CourseID = courseID
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCourseRepo(tx).ReplaceBlocks(ctx, courseID, blocks)
	})
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	c, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("course not found: %s", id)
	}
	return s.courses.Delete(ctx, id)
}

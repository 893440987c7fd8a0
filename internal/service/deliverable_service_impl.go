package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
)

type deliverableService struct {
	deliverables repository.DeliverableRepo
	courses      repository.CourseRepo
}

func NewDeliverableService(deliverables repository.DeliverableRepo, courses repository.CourseRepo) DeliverableService {
	return &deliverableService{deliverables: deliverables, courses: courses}
}

func (s *deliverableService) Create(ctx context.Context, d *domain.Deliverable) error {
	course, err := s.courses.GetByID(ctx, d.CourseID)
	if err != nil {
		return err
	}
	if course == nil {
		return fmt.Errorf("course not found: %s", d.CourseID)
	}

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if d.Status == "" {
		d.Status = domain.StatusIncomplete
	}
	if d.Priority == "" {
		d.Priority = domain.PriorityMedium
	}
	if d.RiskLevel == "" {
		d.RiskLevel = domain.RiskLow
	}
	return s.deliverables.Create(ctx, d)
}

func (s *deliverableService) GetByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	return s.deliverables.GetByID(ctx, id)
}

func (s *deliverableService) ListByCourse(ctx context.Context, courseID string) ([]*domain.Deliverable, error) {
	return s.deliverables.ListByCourse(ctx, courseID)
}

func (s *deliverableService) ListAll(ctx context.Context) ([]*domain.Deliverable, error) {
	return s.deliverables.ListAll(ctx)
}

func (s *deliverableService) Update(ctx context.Context, d *domain.Deliverable) error {
	d.UpdatedAt = time.Now().UTC()
	return s.deliverables.Update(ctx, d)
}

// RecordGrade stores a received grade and moves the deliverable to graded.
func (s *deliverableService) RecordGrade(ctx context.Context, id string, grade float64) error {
	if grade < 0 || grade > 100 {
		return fmt.Errorf("grade must be between 0 and 100, got %.1f", grade)
	}
	d, err := s.deliverables.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("deliverable not found: %s", id)
	}
	d.ActualGrade = &grade
	d.Status = domain.StatusGraded
	d.UpdatedAt = time.Now().UTC()
	return s.deliverables.Update(ctx, d)
}

func (s *deliverableService) SetStatus(ctx context.Context, id string, status domain.DeliverableStatus) error {
	if !domain.ValidDeliverableStatuses[string(status)] {
		return fmt.Errorf("invalid status %q", status)
	}
	d, err := s.deliverables.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("deliverable not found: %s", id)
	}
	d.Status = status
	d.UpdatedAt = time.Now().UTC()
	return s.deliverables.Update(ctx, d)
}

func (s *deliverableService) Delete(ctx context.Context, id string) error {
	d, err := s.deliverables.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("deliverable not found: %s", id)
	}
	return s.deliverables.Delete(ctx, id)
}

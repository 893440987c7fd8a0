package service

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/domain"
	"github.com/natbrooks/orbit/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) SetWeeklyBudget(ctx context.Context, hours float64) error {
	if hours < 0 {
		return fmt.Errorf("weekly budget cannot be negative, got %.1f", hours)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	current.WeeklyBudgetHours = hours
	return s.settings.Upsert(ctx, current)
}

func (s *settingsService) SetDefaultTarget(ctx context.Context, target float64) error {
	if target < 0 || target > 100 {
		return fmt.Errorf("default target must be between 0 and 100, got %.1f", target)
	}
	current, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	current.DefaultTargetGrade = target
	return s.settings.Upsert(ctx, current)
}

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

func TestSettingsService_DefaultsOnFreshDB(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSQLiteSettingsRepo(database))

	s, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWeeklyBudgetHours, s.WeeklyBudgetHours)
	assert.Equal(t, domain.DefaultTargetGrade, s.DefaultTargetGrade)
}

func TestSettingsService_SetWeeklyBudget(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSQLiteSettingsRepo(database))
	ctx := context.Background()

	require.NoError(t, svc.SetWeeklyBudget(ctx, 32))

	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 32.0, s.WeeklyBudgetHours)
	// The target default is untouched.
	assert.Equal(t, domain.DefaultTargetGrade, s.DefaultTargetGrade)
}

func TestSettingsService_SetWeeklyBudget_RejectsNegative(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSQLiteSettingsRepo(database))

	err := svc.SetWeeklyBudget(context.Background(), -5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be negative")
}

func TestSettingsService_SetDefaultTarget(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := service.NewSettingsService(repository.NewSQLiteSettingsRepo(database))
	ctx := context.Background()

	require.NoError(t, svc.SetDefaultTarget(ctx, 92))
	s, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 92.0, s.DefaultTargetGrade)

	assert.Error(t, svc.SetDefaultTarget(ctx, 120))
}

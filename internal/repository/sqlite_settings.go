package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/natbrooks/orbit/internal/db"
	"github.com/natbrooks/orbit/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo over the single-row settings table.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// Get returns the stored settings, or the defaults when the row is missing.
func (r *SQLiteSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	query := `SELECT weekly_budget_hours, default_target_grade FROM settings WHERE id = 'default'`
	row := r.db.QueryRowContext(ctx, query)

	var s domain.Settings
	err := row.Scan(&s.WeeklyBudgetHours, &s.DefaultTargetGrade)
	if err != nil {
		if err == sql.ErrNoRows {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("scanning settings: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSettingsRepo) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `INSERT INTO settings (id, weekly_budget_hours, default_target_grade)
		VALUES ('default', ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET weekly_budget_hours = excluded.weekly_budget_hours,
			default_target_grade = excluded.default_target_grade`
	if _, err := r.db.ExecContext(ctx, query, s.WeeklyBudgetHours, s.DefaultTargetGrade); err != nil {
		return fmt.Errorf("upserting settings: %w", err)
	}
	return nil
}

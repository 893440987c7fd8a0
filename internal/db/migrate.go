package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/natbrooks/orbit/internal/domain"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateLegacyStatuses(db); err != nil {
		return fmt.Errorf("migrating legacy deliverable statuses: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		code         TEXT NOT NULL DEFAULT '',
		color        TEXT NOT NULL DEFAULT '',
		target_grade REAL,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_courses_code ON courses(code) WHERE code != ''`,

	`CREATE TABLE IF NOT EXISTS schedule_blocks (
		id          TEXT PRIMARY KEY,
		course_id   TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		day_of_week INTEGER NOT NULL CHECK(day_of_week BETWEEN 0 AND 6),
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		type        TEXT NOT NULL
		            CHECK(type IN ('class','lab','office-hours','study-block'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_blocks_course ON schedule_blocks(course_id)`,

	// Status deliberately carries no CHECK constraint: rows imported from
	// older exports may hold a wider vocabulary that migrateLegacyStatuses
	// rewrites after the schema statements run.
	`CREATE TABLE IF NOT EXISTS deliverables (
		id              TEXT PRIMARY KEY,
		course_id       TEXT NOT NULL REFERENCES courses(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		due_date        TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'incomplete',
		priority        TEXT NOT NULL DEFAULT 'medium'
		                CHECK(priority IN ('low','medium','high')),
		estimated_hours REAL NOT NULL DEFAULT 0,
		grade_weight    REAL NOT NULL DEFAULT 0,
		target_grade    REAL,
		actual_grade    REAL,
		current_grade   REAL,
		risk_level      TEXT NOT NULL DEFAULT 'low'
		                CHECK(risk_level IN ('low','medium','high','critical')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_deliverables_course ON deliverables(course_id)`,
	`CREATE INDEX IF NOT EXISTS idx_deliverables_due ON deliverables(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_deliverables_status ON deliverables(status)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id                   TEXT PRIMARY KEY DEFAULT 'default',
		weekly_budget_hours  REAL NOT NULL DEFAULT 30,
		default_target_grade REAL NOT NULL DEFAULT 85
	)`,

	// Seed default settings
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,
}

// migrateLegacyStatuses rewrites deliverable status values from the older
// vocabulary (not_started, overdue, completed) to the canonical set.
// Idempotent: canonical rows are left untouched.
func migrateLegacyStatuses(db *sql.DB) error {
	ctx := context.Background()

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT status FROM deliverables`)
	if err != nil {
		return fmt.Errorf("listing deliverable statuses: %w", err)
	}
	var stale []string
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			rows.Close()
			return fmt.Errorf("scanning status: %w", err)
		}
		if !domain.ValidDeliverableStatuses[status] {
			stale = append(stale, status)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating statuses: %w", err)
	}

	for _, status := range stale {
		canonical := domain.MigrateLegacyStatus(status)
		if _, err := db.ExecContext(ctx,
			`UPDATE deliverables SET status = ? WHERE status = ?`, string(canonical), status); err != nil {
			return fmt.Errorf("rewriting status %q: %w", status, err)
		}
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// SQLiteDeliverableRepo implements DeliverableRepo using a SQLite database.
type SQLiteDeliverableRepo struct {
	db *sql.DB
}

// NewSQLiteDeliverableRepo creates a new SQLiteDeliverableRepo.
func NewSQLiteDeliverableRepo(db *sql.DB) *SQLiteDeliverableRepo {
	return &SQLiteDeliverableRepo{db: db}
}

const dateLayout = "2006-01-02"

const deliverableColumns = `id, course_id, title, due_date, status, priority,
	estimated_hours, grade_weight, target_grade, actual_grade, current_grade,
	risk_level, created_at, updated_at`

func (r *SQLiteDeliverableRepo) Create(ctx context.Context, d *domain.Deliverable) error {
	query := `INSERT INTO deliverables (` + deliverableColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.CourseID,
		d.Title,
		d.DueDate.Format(dateLayout),
		string(d.Status),
		string(d.Priority),
		d.EstimatedHours,
		d.GradeWeight,
		nullableFloatToValue(d.TargetGrade),
		nullableFloatToValue(d.ActualGrade),
		nullableFloatToValue(d.CurrentGrade),
		string(d.RiskLevel),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting deliverable: %w", err)
	}
	return nil
}

func (r *SQLiteDeliverableRepo) GetByID(ctx context.Context, id string) (*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanDeliverable(row)
}

func (r *SQLiteDeliverableRepo) ListByCourse(ctx context.Context, courseID string) ([]*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE course_id = ? ORDER BY due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}
	return r.collectDeliverables(rows)
}

func (r *SQLiteDeliverableRepo) ListAll(ctx context.Context) ([]*domain.Deliverable, error) {
	query := `SELECT ` + deliverableColumns + ` FROM deliverables ORDER BY due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}
	return r.collectDeliverables(rows)
}

func (r *SQLiteDeliverableRepo) Update(ctx context.Context, d *domain.Deliverable) error {
	query := `UPDATE deliverables SET course_id = ?, title = ?, due_date = ?, status = ?, priority = ?,
		estimated_hours = ?, grade_weight = ?, target_grade = ?, actual_grade = ?, current_grade = ?,
		risk_level = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		d.CourseID,
		d.Title,
		d.DueDate.Format(dateLayout),
		string(d.Status),
		string(d.Priority),
		d.EstimatedHours,
		d.GradeWeight,
		nullableFloatToValue(d.TargetGrade),
		nullableFloatToValue(d.ActualGrade),
		nullableFloatToValue(d.CurrentGrade),
		string(d.RiskLevel),
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating deliverable: %w", err)
	}
	return nil
}

func (r *SQLiteDeliverableRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM deliverables WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting deliverable: %w", err)
	}
	return nil
}

func (r *SQLiteDeliverableRepo) collectDeliverables(rows *sql.Rows) ([]*domain.Deliverable, error) {
	defer rows.Close()

	var items []*domain.Deliverable
	for rows.Next() {
		d, err := r.scanDeliverableFromRows(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deliverables: %w", err)
	}
	return items, nil
}

// scanDeliverable scans a single deliverable row from a *sql.Row. Not-found
// lookups return (nil, nil).
func (r *SQLiteDeliverableRepo) scanDeliverable(row *sql.Row) (*domain.Deliverable, error) {
	var d domain.Deliverable
	var dueDateStr, statusStr, priorityStr, riskStr, createdAtStr, updatedAtStr string
	var targetGrade, actualGrade, currentGrade sql.NullFloat64

	err := row.Scan(
		&d.ID, &d.CourseID, &d.Title, &dueDateStr, &statusStr, &priorityStr,
		&d.EstimatedHours, &d.GradeWeight, &targetGrade, &actualGrade, &currentGrade,
		&riskStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning deliverable: %w", err)
	}
	return r.finishDeliverable(&d, dueDateStr, statusStr, priorityStr, riskStr, createdAtStr, updatedAtStr, targetGrade, actualGrade, currentGrade)
}

func (r *SQLiteDeliverableRepo) scanDeliverableFromRows(rows *sql.Rows) (*domain.Deliverable, error) {
	var d domain.Deliverable
	var dueDateStr, statusStr, priorityStr, riskStr, createdAtStr, updatedAtStr string
	var targetGrade, actualGrade, currentGrade sql.NullFloat64

	err := rows.Scan(
		&d.ID, &d.CourseID, &d.Title, &dueDateStr, &statusStr, &priorityStr,
		&d.EstimatedHours, &d.GradeWeight, &targetGrade, &actualGrade, &currentGrade,
		&riskStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning deliverable row: %w", err)
	}
	return r.finishDeliverable(&d, dueDateStr, statusStr, priorityStr, riskStr, createdAtStr, updatedAtStr, targetGrade, actualGrade, currentGrade)
}

func (r *SQLiteDeliverableRepo) finishDeliverable(
	d *domain.Deliverable,
	dueDateStr, statusStr, priorityStr, riskStr, createdAtStr, updatedAtStr string,
	targetGrade, actualGrade, currentGrade sql.NullFloat64,
) (*domain.Deliverable, error) {
	d.Status = domain.MigrateLegacyStatus(statusStr)
	d.Priority = domain.Priority(priorityStr)
	d.RiskLevel = domain.RiskLevel(riskStr)
	d.TargetGrade = parseNullableFloat(targetGrade)
	d.ActualGrade = parseNullableFloat(actualGrade)
	d.CurrentGrade = parseNullableFloat(currentGrade)

	var parseErr error
	d.DueDate, parseErr = time.Parse(dateLayout, dueDateStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing due_date: %w", parseErr)
	}
	d.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	d.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return d, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/natbrooks/orbit/internal/db"
	"github.com/natbrooks/orbit/internal/domain"
)

// SQLiteCourseRepo implements CourseRepo using a SQLite database. It accepts
// a db.DBTX so callers can scope it to a transaction when a course and its
// schedule blocks must be written together.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

const courseColumns = `id, name, code, color, target_grade, created_at, updated_at`

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Code,
		c.Color,
		nullableFloatToValue(c.TargetGrade),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	for i := range c.ScheduleBlocks {
		if err := r.insertBlock(ctx, c.ID, &c.ScheduleBlocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := r.scanCourse(row)
	if err != nil || c == nil {
		return c, err
	}
	if err := r.loadBlocks(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE UPPER(code) = UPPER(?)`
	row := r.db.QueryRowContext(ctx, query, code)
	c, err := r.scanCourse(row)
	if err != nil || c == nil {
		return c, err
	}
	if err := r.loadBlocks(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := r.scanCourseFromRows(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	for _, c := range courses {
		if err := r.loadBlocks(ctx, c); err != nil {
			return nil, err
		}
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	query := `UPDATE courses SET name = ?, code = ?, color = ?, target_grade = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Code,
		c.Color,
		nullableFloatToValue(c.TargetGrade),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return nil
}

// ReplaceBlocks swaps a course's schedule blocks for a new set. Run inside a
// transaction when atomicity with other writes matters.
func (r *SQLiteCourseRepo) ReplaceBlocks(ctx context.Context, courseID string, blocks []domain.ScheduleBlock) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_blocks WHERE course_id = ?`, courseID); err != nil {
		return fmt.Errorf("clearing schedule blocks: %w", err)
	}
	for i := range blocks {
		if err := r.insertBlock(ctx, courseID, &blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM courses WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) insertBlock(ctx context.Context, courseID string, b *domain.ScheduleBlock) error {
	query := `INSERT INTO schedule_blocks (id, course_id, day_of_week, start_time, end_time, type)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, courseID, b.DayOfWeek, b.StartTime, b.EndTime, string(b.Type))
	if err != nil {
		return fmt.Errorf("inserting schedule block: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) loadBlocks(ctx context.Context, c *domain.Course) error {
	query := `SELECT id, course_id, day_of_week, start_time, end_time, type
		FROM schedule_blocks WHERE course_id = ? ORDER BY day_of_week, start_time`
	rows, err := r.db.QueryContext(ctx, query, c.ID)
	if err != nil {
		return fmt.Errorf("listing schedule blocks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.ScheduleBlock
		var typeStr string
		if err := rows.Scan(&b.ID, &b.CourseID, &b.DayOfWeek, &b.StartTime, &b.EndTime, &typeStr); err != nil {
			return fmt.Errorf("scanning schedule block: %w", err)
		}
		b.Type = domain.BlockType(typeStr)
		c.ScheduleBlocks = append(c.ScheduleBlocks, b)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating schedule blocks: %w", err)
	}
	return nil
}

// scanCourse scans a single course row from a *sql.Row. Not-found lookups
// return (nil, nil).
func (r *SQLiteCourseRepo) scanCourse(row *sql.Row) (*domain.Course, error) {
	var c domain.Course
	var targetGrade sql.NullFloat64
	var createdAtStr, updatedAtStr string

	err := row.Scan(&c.ID, &c.Name, &c.Code, &c.Color, &targetGrade, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}

	c.TargetGrade = parseNullableFloat(targetGrade)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}

func (r *SQLiteCourseRepo) scanCourseFromRows(rows *sql.Rows) (*domain.Course, error) {
	var c domain.Course
	var targetGrade sql.NullFloat64
	var createdAtStr, updatedAtStr string

	err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Color, &targetGrade, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning course row: %w", err)
	}

	c.TargetGrade = parseNullableFloat(targetGrade)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduplat/courses/internal/app/models"
)

// CourseWithLessonCount is a course listing row annotated with the number
// of lessons currently attached.
type CourseWithLessonCount struct {
	Course      models.Course
	LessonCount int
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts a course and returns its id. A unique violation on the
// code column is returned to the caller unchanged so it can regenerate.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	query := squirrel.Insert("courses").
		Columns("name", "description", "instructor_id", "code").
		Values(course.Name, course.Description, course.InstructorID, course.Code).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// GetByID retrieves a course by id. Returns (nil, nil) when no course exists.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := squirrel.Select("id", "name", "description", "instructor_id", "code").
		From("courses").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.InstructorID,
		&course.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &course, nil
}

// GetByCode retrieves a course by its exact code. Returns (nil, nil) when no
// course carries that code.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := squirrel.Select("id", "name", "description", "instructor_id", "code").
		From("courses").
		Where("code = ?", code).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.Name,
		&course.Description,
		&course.InstructorID,
		&course.Code,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &course, nil
}

// List retrieves courses in insertion order with their lesson counts,
// paginated by offset/limit, plus the total course count.
func (r *CourseRepository) List(ctx context.Context, offset uint64, limit int) ([]CourseWithLessonCount, int64, error) {
	query := squirrel.Select(
		"c.id", "c.name", "c.description", "c.instructor_id", "c.code",
		"COUNT(l.id) AS lesson_count",
	).
		From("courses c").
		LeftJoin("lessons l ON l.course_id = c.id").
		GroupBy("c.id").
		OrderBy("c.id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var results []CourseWithLessonCount
	for rows.Next() {
		var row CourseWithLessonCount
		err := rows.Scan(
			&row.Course.ID,
			&row.Course.Name,
			&row.Course.Description,
			&row.Course.InstructorID,
			&row.Course.Code,
			&row.LessonCount,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		results = append(results, row)
	}

	countSql, countArgs, err := squirrel.Select("COUNT(*)").
		From("courses").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}

	return results, total, nil
}

// Update applies the provided column values to a course.
func (r *CourseRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query := squirrel.Update("courses").
		SetMap(fields).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Delete removes a course. Lessons, accesses and join requests go with it
// through the schema's ON DELETE CASCADE.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("courses").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

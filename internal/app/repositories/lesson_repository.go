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

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	db *pgxpool.Pool
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{db: db}
}

// Create inserts a lesson and returns its id.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (int64, error) {
	query := squirrel.Insert("lessons").
		Columns("name", "content", "number", "video", "course_id", "quiz_id").
		Values(lesson.Name, lesson.Content, lesson.Number, lesson.Video, lesson.CourseID, lesson.QuizID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	return id, nil
}

// GetByCourseID retrieves all lessons of a course ordered by number ascending.
func (r *LessonRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.Lesson, error) {
	query := squirrel.Select("id", "name", "content", "number", "video", "course_id", "quiz_id").
		From("lessons").
		Where("course_id = ?", courseID).
		OrderBy("number ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var lessons []*models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		err := rows.Scan(
			&lesson.ID,
			&lesson.Name,
			&lesson.Content,
			&lesson.Number,
			&lesson.Video,
			&lesson.CourseID,
			&lesson.QuizID,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		lessons = append(lessons, &lesson)
	}

	return lessons, nil
}

// GetByID retrieves a lesson scoped to a course. Returns (nil, nil) when the
// lesson does not exist or belongs to a different course.
func (r *LessonRepository) GetByID(ctx context.Context, courseID, lessonID int64) (*models.Lesson, error) {
	query := squirrel.Select("id", "name", "content", "number", "video", "course_id", "quiz_id").
		From("lessons").
		Where("id = ? AND course_id = ?", lessonID, courseID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var lesson models.Lesson
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&lesson.ID,
		&lesson.Name,
		&lesson.Content,
		&lesson.Number,
		&lesson.Video,
		&lesson.CourseID,
		&lesson.QuizID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &lesson, nil
}

// Update applies the provided column values to a lesson.
func (r *LessonRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	query := squirrel.Update("lessons").
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

// Delete removes a lesson.
func (r *LessonRepository) Delete(ctx context.Context, id int64) error {
	query := squirrel.Delete("lessons").
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

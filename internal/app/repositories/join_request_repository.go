package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/db"
)

// JoinRequestRepository handles database operations for join requests
type JoinRequestRepository struct {
	db *pgxpool.Pool
}

// NewJoinRequestRepository creates a new JoinRequestRepository
func NewJoinRequestRepository(db *pgxpool.Pool) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// GetOrCreate returns the pending request for a (course, user) pair,
// creating one when none exists. The bool reports whether a new row was
// created.
func (r *JoinRequestRepository) GetOrCreate(ctx context.Context, courseID, userID int64) (*models.JoinRequest, bool, error) {
	selectSql, selectArgs, err := squirrel.Select("id", "course_id", "user_id").
		From("join_requests").
		Where("course_id = ? AND user_id = ?", courseID, userID).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("error building SQL: %w", err)
	}

	var request models.JoinRequest
	err = r.db.QueryRow(ctx, selectSql, selectArgs...).Scan(&request.ID, &request.CourseID, &request.UserID)
	if err == nil {
		return &request, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("error executing query: %w", err)
	}

	insertSql, insertArgs, err := squirrel.Insert("join_requests").
		Columns("course_id", "user_id").
		Values(courseID, userID).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("error building SQL: %w", err)
	}

	request = models.JoinRequest{CourseID: courseID, UserID: userID}
	if err := r.db.QueryRow(ctx, insertSql, insertArgs...).Scan(&request.ID); err != nil {
		return nil, false, fmt.Errorf("error executing query: %w", err)
	}

	return &request, true, nil
}

// GetByCourseID retrieves all pending join requests for a course.
func (r *JoinRequestRepository) GetByCourseID(ctx context.Context, courseID int64) ([]*models.JoinRequest, error) {
	query := squirrel.Select("id", "course_id", "user_id").
		From("join_requests").
		Where("course_id = ?", courseID).
		OrderBy("id ASC").
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

	var requests []*models.JoinRequest
	for rows.Next() {
		var request models.JoinRequest
		if err := rows.Scan(&request.ID, &request.CourseID, &request.UserID); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

// ResolveBatch resolves a batch of join requests inside one transaction.
// Only rows whose id is in requestIDs AND whose course matches courseID are
// touched; ids belonging to other courses fall out of the filter. Access
// rows for accepted requests go in as a single bulk insert, then every
// matched request is deleted regardless of decision.
func (r *JoinRequestRepository) ResolveBatch(ctx context.Context, courseID int64, requestIDs []int64, accepted map[int64]bool) error {
	if len(requestIDs) == 0 {
		return nil
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		selectSql, selectArgs, err := squirrel.Select("id", "course_id", "user_id").
			From("join_requests").
			Where(squirrel.And{
				squirrel.Eq{"id": requestIDs},
				squirrel.Eq{"course_id": courseID},
			}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}

		rows, err := tx.Query(ctx, selectSql, selectArgs...)
		if err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		var matched []models.JoinRequest
		for rows.Next() {
			var request models.JoinRequest
			if err := rows.Scan(&request.ID, &request.CourseID, &request.UserID); err != nil {
				rows.Close()
				return fmt.Errorf("error scanning row: %w", err)
			}
			matched = append(matched, request)
		}
		rows.Close()

		if len(matched) == 0 {
			return nil
		}

		insert := squirrel.Insert("accesses").
			Columns("course_id", "user_id").
			Suffix("ON CONFLICT (course_id, user_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar)

		hasAccepted := false
		matchedIDs := make([]int64, 0, len(matched))
		for _, request := range matched {
			matchedIDs = append(matchedIDs, request.ID)
			if accepted[request.ID] {
				insert = insert.Values(request.CourseID, request.UserID)
				hasAccepted = true
			}
		}

		if hasAccepted {
			insertSql, insertArgs, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("error building SQL: %w", err)
			}
			if _, err := tx.Exec(ctx, insertSql, insertArgs...); err != nil {
				return fmt.Errorf("error executing query: %w", err)
			}
		}

		deleteSql, deleteArgs, err := squirrel.Delete("join_requests").
			Where(squirrel.Eq{"id": matchedIDs}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, deleteSql, deleteArgs...); err != nil {
			return fmt.Errorf("error executing query: %w", err)
		}

		return nil
	})
}

package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccessRepository handles database operations for enrollment grants
type AccessRepository struct {
	db *pgxpool.Pool
}

// NewAccessRepository creates a new AccessRepository
func NewAccessRepository(db *pgxpool.Pool) *AccessRepository {
	return &AccessRepository{db: db}
}

// GetOrCreate grants access for a (course, user) pair. Returns true when a
// new grant was created, false when the pair was already enrolled. The
// unique constraint arbitrates concurrent calls; the loser sees the
// existing row instead of an error.
func (r *AccessRepository) GetOrCreate(ctx context.Context, courseID, userID int64) (bool, error) {
	query := squirrel.Insert("accesses").
		Columns("course_id", "user_id").
		Values(courseID, userID).
		Suffix("ON CONFLICT (course_id, user_id) DO NOTHING RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: the grant already existed
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

// HasAccess checks whether an enrollment grant exists for the pair.
func (r *AccessRepository) HasAccess(ctx context.Context, courseID, userID int64) (bool, error) {
	query := squirrel.Select("1").
		From("accesses").
		Where("course_id = ? AND user_id = ?", courseID, userID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return true, nil
}

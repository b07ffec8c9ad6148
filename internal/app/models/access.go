package models

// Access represents a granted enrollment for a (course, user) pair. At most
// one row exists per pair; rows are only removed through course deletion.
type Access struct {
	ID       int64 `json:"id" db:"id"`
	CourseID int64 `json:"course_id" db:"course_id"`
	UserID   int64 `json:"user_id" db:"user_id"`
}

// JoinRequest represents a pending enrollment ask for a (course, user) pair.
// The owning instructor resolves requests in batches; resolved requests are
// deleted whether accepted or not.
type JoinRequest struct {
	ID       int64 `json:"id" db:"id"`
	CourseID int64 `json:"course_id" db:"course_id"`
	UserID   int64 `json:"user_id" db:"user_id"`
}

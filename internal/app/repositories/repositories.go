package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories contains all repositories
type Repositories struct {
	Course      *CourseRepository
	Lesson      *LessonRepository
	Access      *AccessRepository
	JoinRequest *JoinRequestRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Course:      NewCourseRepository(db),
		Lesson:      NewLessonRepository(db),
		Access:      NewAccessRepository(db),
		JoinRequest: NewJoinRequestRepository(db),
	}
}

package services

import (
	"context"
	"mime/multipart"

	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/repositories"
	"github.com/eduplat/courses/internal/pkg/userdir"
)

// CourseStore is the course persistence surface the services consume.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	List(ctx context.Context, offset uint64, limit int) ([]repositories.CourseWithLessonCount, int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// LessonStore is the lesson persistence surface the services consume.
type LessonStore interface {
	Create(ctx context.Context, lesson *models.Lesson) (int64, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.Lesson, error)
	GetByID(ctx context.Context, courseID, lessonID int64) (*models.Lesson, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
}

// AccessStore is the enrollment-grant persistence surface.
type AccessStore interface {
	GetOrCreate(ctx context.Context, courseID, userID int64) (bool, error)
	HasAccess(ctx context.Context, courseID, userID int64) (bool, error)
}

// JoinRequestStore is the join-request persistence surface.
type JoinRequestStore interface {
	GetOrCreate(ctx context.Context, courseID, userID int64) (*models.JoinRequest, bool, error)
	GetByCourseID(ctx context.Context, courseID int64) ([]*models.JoinRequest, error)
	ResolveBatch(ctx context.Context, courseID int64, requestIDs []int64, accepted map[int64]bool) error
}

// UserDirectory resolves subject ids to display identities via the user
// service. All consumers in this package treat it as best-effort.
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*userdir.Identity, error)
	GetUsers(ctx context.Context, userIDs []int64) ([]userdir.Identity, error)
}

// FileStore persists uploaded lesson videos.
type FileStore interface {
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)
	DeleteFile(fileRef string) error
}

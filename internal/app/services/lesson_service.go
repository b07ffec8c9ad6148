package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/eduplat/courses/internal/app/auth"
	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/logger"
)

// lessonVideoDir is the storage subdirectory for uploaded lesson videos.
const lessonVideoDir = "lesson-videos"

// LessonService defines the interface for lesson operations
type LessonService interface {
	CreateLesson(ctx context.Context, courseID int64, req *dto.CreateLessonRequest, video *multipart.FileHeader) (*dto.LessonResponse, error)
	ListLessons(ctx context.Context, courseID, requesterID int64) ([]dto.LessonResponse, error)
	GetLesson(ctx context.Context, courseID, lessonID, requesterID int64) (*dto.LessonResponse, error)
	UpdateLesson(ctx context.Context, courseID, lessonID, requesterID int64, req *dto.UpdateLessonRequest, video *multipart.FileHeader) (*dto.LessonResponse, error)
	DeleteLesson(ctx context.Context, courseID, lessonID, requesterID int64) error
}

// lessonServiceImpl implements LessonService
type lessonServiceImpl struct {
	lessons     LessonStore
	courses     CourseStore
	authz       *auth.AuthorizationService
	files       FileStore
	openListing bool
}

// NewLessonService creates a new LessonService. openListing controls
// whether listing a course's lessons requires enrollment.
func NewLessonService(lessons LessonStore, courses CourseStore, authz *auth.AuthorizationService, files FileStore, openListing bool) LessonService {
	return &lessonServiceImpl{
		lessons:     lessons,
		courses:     courses,
		authz:       authz,
		files:       files,
		openListing: openListing,
	}
}

// CreateLesson adds a lesson to an existing course. Only course existence
// is checked here, not ownership; instructor-only routing is the sole gate
// in front of this operation.
func (s *lessonServiceImpl) CreateLesson(ctx context.Context, courseID int64, req *dto.CreateLessonRequest, video *multipart.FileHeader) (*dto.LessonResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	number := 1
	if req.Number != nil {
		number = *req.Number
	}

	lesson := &models.Lesson{
		Name:     req.Name,
		Content:  req.Content,
		Number:   number,
		CourseID: courseID,
		QuizID:   req.QuizID,
	}

	if video != nil {
		videoRef, err := s.files.SaveFile(video, lessonVideoDir)
		if err != nil {
			return nil, fmt.Errorf("error storing lesson video: %w", err)
		}
		lesson.Video = &videoRef
	}

	id, err := s.lessons.Create(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("error creating lesson: %w", err)
	}
	lesson.ID = id

	return lessonToResponse(lesson), nil
}

// ListLessons retrieves a course's lessons ordered by number ascending.
// Unless open listing is configured, the requester must own the course or
// be enrolled in it.
func (s *lessonServiceImpl) ListLessons(ctx context.Context, courseID, requesterID int64) ([]dto.LessonResponse, error) {
	if s.openListing {
		course, err := s.courses.GetByID(ctx, courseID)
		if err != nil {
			return nil, fmt.Errorf("error getting course: %w", err)
		}
		if course == nil {
			return nil, apperrors.ErrResourceNotFound
		}
	} else if err := s.authz.RequireAccess(ctx, courseID, requesterID); err != nil {
		return nil, err
	}

	lessons, err := s.lessons.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting lessons: %w", err)
	}

	responses := make([]dto.LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		responses = append(responses, *lessonToResponse(lesson))
	}
	return responses, nil
}

// GetLesson retrieves a lesson for an enrolled requester. A missing lesson
// and a missing enrollment produce the same ErrResourceNotFound.
func (s *lessonServiceImpl) GetLesson(ctx context.Context, courseID, lessonID, requesterID int64) (*dto.LessonResponse, error) {
	if err := s.authz.RequireAccess(ctx, courseID, requesterID); err != nil {
		return nil, err
	}

	lesson, err := s.lessons.GetByID(ctx, courseID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("error getting lesson: %w", err)
	}
	if lesson == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	return lessonToResponse(lesson), nil
}

// UpdateLesson applies a partial update to a lesson in a course owned by
// requesterID. A new video replaces the stored one.
func (s *lessonServiceImpl) UpdateLesson(ctx context.Context, courseID, lessonID, requesterID int64, req *dto.UpdateLessonRequest, video *multipart.FileHeader) (*dto.LessonResponse, error) {
	if _, err := s.authz.RequireCourseOwner(ctx, courseID, requesterID); err != nil {
		return nil, err
	}

	lesson, err := s.lessons.GetByID(ctx, courseID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("error getting lesson: %w", err)
	}
	if lesson == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
		lesson.Name = *req.Name
	}
	if req.Content != nil {
		fields["content"] = *req.Content
		lesson.Content = *req.Content
	}
	if req.Number != nil {
		fields["number"] = *req.Number
		lesson.Number = *req.Number
	}
	if req.QuizID != nil {
		fields["quiz_id"] = *req.QuizID
		lesson.QuizID = req.QuizID
	}

	if video != nil {
		videoRef, err := s.files.SaveFile(video, lessonVideoDir)
		if err != nil {
			return nil, fmt.Errorf("error storing lesson video: %w", err)
		}

		oldVideo := lesson.Video
		fields["video"] = videoRef
		lesson.Video = &videoRef

		if oldVideo != nil {
			if err := s.files.DeleteFile(*oldVideo); err != nil {
				logger.Warn().Err(err).Str("video", *oldVideo).Msg("Failed to delete replaced lesson video")
			}
		}
	}

	if len(fields) > 0 {
		if err := s.lessons.Update(ctx, lesson.ID, fields); err != nil {
			return nil, fmt.Errorf("error updating lesson: %w", err)
		}
	}

	return lessonToResponse(lesson), nil
}

// DeleteLesson removes a lesson from a course owned by requesterID.
func (s *lessonServiceImpl) DeleteLesson(ctx context.Context, courseID, lessonID, requesterID int64) error {
	if _, err := s.authz.RequireCourseOwner(ctx, courseID, requesterID); err != nil {
		return err
	}

	lesson, err := s.lessons.GetByID(ctx, courseID, lessonID)
	if err != nil {
		return fmt.Errorf("error getting lesson: %w", err)
	}
	if lesson == nil {
		return apperrors.ErrResourceNotFound
	}

	if err := s.lessons.Delete(ctx, lesson.ID); err != nil {
		return fmt.Errorf("error deleting lesson: %w", err)
	}

	if lesson.Video != nil {
		if err := s.files.DeleteFile(*lesson.Video); err != nil {
			logger.Warn().Err(err).Str("video", *lesson.Video).Msg("Failed to delete lesson video")
		}
	}

	return nil
}

func lessonToResponse(lesson *models.Lesson) *dto.LessonResponse {
	return &dto.LessonResponse{
		ID:       lesson.ID,
		Name:     lesson.Name,
		Content:  lesson.Content,
		Number:   lesson.Number,
		Video:    lesson.Video,
		CourseID: lesson.CourseID,
		QuizID:   lesson.QuizID,
	}
}

package services

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/eduplat/courses/internal/app/auth"
	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/dberrors"
	"github.com/eduplat/courses/internal/pkg/logger"
)

// codeAlphabet is the character set used to pad course codes after the
// instructor id prefix.
const codeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxCodeAttempts bounds the regenerate-on-collision loop. The code space
// is large enough that hitting this limit means something is wrong with
// the store, not with the dice.
const maxCodeAttempts = 5

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, ownerID int64, req *dto.CreateCourseRequest) (*dto.CreatedCourseResponse, error)
	ListCourses(ctx context.Context, offset uint64, limit int) (*dto.CourseListResponse, error)
	GetCourse(ctx context.Context, courseID int64) (*dto.CourseDetailResponse, error)
	UpdateCourse(ctx context.Context, courseID, requesterID int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	DeleteCourse(ctx context.Context, courseID, requesterID int64) error
	RedeemCode(ctx context.Context, code string, requesterID int64) (alreadyEnrolled bool, err error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courses  CourseStore
	lessons  LessonStore
	accesses AccessStore
	authz    *auth.AuthorizationService
	userDir  UserDirectory
	randInt  func(n int) int
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courses CourseStore,
	lessons LessonStore,
	accesses AccessStore,
	authz *auth.AuthorizationService,
	userDir UserDirectory,
) CourseService {
	return &courseServiceImpl{
		courses:  courses,
		lessons:  lessons,
		accesses: accesses,
		authz:    authz,
		userDir:  userDir,
		randInt:  rand.Intn,
	}
}

// generateCode builds a candidate course code: the owner id in decimal
// followed by random alphanumeric characters up to the fixed total length.
func (s *courseServiceImpl) generateCode(ownerID int64) (string, error) {
	prefix := strconv.FormatInt(ownerID, 10)
	padding := models.CodeLength - len(prefix)
	if padding <= 0 {
		// Instructor ids this large mean the fixed code length was
		// misconfigured for this deployment.
		return "", apperrors.ErrCodeSpaceTooSmall
	}

	buf := make([]byte, padding)
	for i := range buf {
		buf[i] = codeAlphabet[s.randInt(len(codeAlphabet))]
	}
	return prefix + string(buf), nil
}

// CreateCourse creates a course owned by ownerID with a freshly generated
// unique code. A code collision is arbitrated by the store's unique
// constraint; the insert is retried with a new code.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, ownerID int64, req *dto.CreateCourseRequest) (*dto.CreatedCourseResponse, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := s.generateCode(ownerID)
		if err != nil {
			return nil, err
		}

		course := &models.Course{
			Name:         req.Name,
			Description:  req.Description,
			InstructorID: ownerID,
			Code:         code,
		}

		id, err := s.courses.Create(ctx, course)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
				logger.Warn().Str("code", code).Msg("Course code collision, regenerating")
				continue
			}
			return nil, fmt.Errorf("error creating course: %w", err)
		}

		return &dto.CreatedCourseResponse{
			ID:           id,
			Name:         course.Name,
			Description:  course.Description,
			InstructorID: course.InstructorID,
			Code:         course.Code,
		}, nil
	}

	return nil, apperrors.ErrCodeExhausted
}

// ListCourses retrieves all courses with their lesson counts, paginated.
func (s *courseServiceImpl) ListCourses(ctx context.Context, offset uint64, limit int) (*dto.CourseListResponse, error) {
	rows, total, err := s.courses.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	items := make([]dto.CourseResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.CourseResponse{
			ID:           row.Course.ID,
			Name:         row.Course.Name,
			Description:  row.Course.Description,
			InstructorID: row.Course.InstructorID,
			LessonCount:  row.LessonCount,
		})
	}

	return &dto.CourseListResponse{
		Items: items,
		Count: total,
	}, nil
}

// GetCourse retrieves a course with its lessons ordered by number. The
// instructor identity is resolved through the user directory; a failed
// lookup just leaves the field out.
func (s *courseServiceImpl) GetCourse(ctx context.Context, courseID int64) (*dto.CourseDetailResponse, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrResourceNotFound
	}

	lessons, err := s.lessons.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting lessons: %w", err)
	}

	lessonResponses := make([]dto.LessonResponse, 0, len(lessons))
	for _, lesson := range lessons {
		lessonResponses = append(lessonResponses, dto.LessonResponse{
			ID:       lesson.ID,
			Name:     lesson.Name,
			Content:  lesson.Content,
			Number:   lesson.Number,
			Video:    lesson.Video,
			CourseID: lesson.CourseID,
			QuizID:   lesson.QuizID,
		})
	}

	response := &dto.CourseDetailResponse{
		ID:           course.ID,
		Name:         course.Name,
		Description:  course.Description,
		InstructorID: course.InstructorID,
		Lessons:      lessonResponses,
	}

	identity, err := s.userDir.GetUser(ctx, course.InstructorID)
	if err != nil {
		logger.Warn().Err(err).Int64("instructorID", course.InstructorID).Msg("Failed to resolve instructor identity")
	} else {
		response.Instructor = &dto.UserIdentity{
			ID:           identity.ID,
			Username:     identity.Username,
			IsInstructor: identity.IsInstructor,
		}
	}

	return response, nil
}

// UpdateCourse applies a partial update to a course owned by requesterID.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, courseID, requesterID int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.authz.RequireCourseOwner(ctx, courseID, requesterID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if req.Name != nil {
		fields["name"] = *req.Name
		course.Name = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
		course.Description = req.Description
	}

	if len(fields) > 0 {
		if err := s.courses.Update(ctx, courseID, fields); err != nil {
			return nil, fmt.Errorf("error updating course: %w", err)
		}
	}

	lessons, err := s.lessons.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting lessons: %w", err)
	}

	return &dto.CourseResponse{
		ID:           course.ID,
		Name:         course.Name,
		Description:  course.Description,
		InstructorID: course.InstructorID,
		LessonCount:  len(lessons),
	}, nil
}

// DeleteCourse removes a course owned by requesterID. Lessons, accesses
// and join requests cascade with it.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, courseID, requesterID int64) error {
	if _, err := s.authz.RequireCourseOwner(ctx, courseID, requesterID); err != nil {
		return err
	}

	if err := s.courses.Delete(ctx, courseID); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}

// RedeemCode grants the requester access to the course carrying the code.
// Returns alreadyEnrolled=true when the grant existed before the call.
func (s *courseServiceImpl) RedeemCode(ctx context.Context, code string, requesterID int64) (bool, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return false, fmt.Errorf("error looking up code: %w", err)
	}
	if course == nil {
		return false, apperrors.ErrResourceNotFound
	}

	created, err := s.accesses.GetOrCreate(ctx, course.ID, requesterID)
	if err != nil {
		return false, fmt.Errorf("error granting access: %w", err)
	}

	return !created, nil
}

package auth

import (
	"context"
	"fmt"

	"github.com/eduplat/courses/internal/app/models"
	"github.com/eduplat/courses/internal/pkg/apperrors"
)

// CourseGetter fetches a course by id. (nil, nil) means no such course.
type CourseGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// AccessChecker reports whether an enrollment grant exists.
type AccessChecker interface {
	HasAccess(ctx context.Context, courseID, userID int64) (bool, error)
}

// AuthorizationService evaluates ownership and enrollment. Every failed
// check surfaces as ErrResourceNotFound: a caller probing another
// instructor's course gets the same answer as one probing a course that
// does not exist.
type AuthorizationService struct {
	courses  CourseGetter
	accesses AccessChecker
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(courses CourseGetter, accesses AccessChecker) *AuthorizationService {
	return &AuthorizationService{
		courses:  courses,
		accesses: accesses,
	}
}

// IsOwner reports whether the subject owns the course.
func (s *AuthorizationService) IsOwner(course *models.Course, userID int64) bool {
	return course != nil && course.InstructorID == userID
}

// HasAccess reports whether the subject holds an enrollment grant for the course.
func (s *AuthorizationService) HasAccess(ctx context.Context, courseID, userID int64) (bool, error) {
	hasAccess, err := s.accesses.HasAccess(ctx, courseID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check access: %w", err)
	}
	return hasAccess, nil
}

// RequireCourseOwner fetches the course and verifies ownership. Both a
// missing course and a foreign owner come back as ErrResourceNotFound.
func (s *AuthorizationService) RequireCourseOwner(ctx context.Context, courseID, userID int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil || course.InstructorID != userID {
		return nil, apperrors.ErrResourceNotFound
	}
	return course, nil
}

// RequireAccess verifies an enrollment grant for the subject on the course.
// Owners pass without a grant. Missing access surfaces as
// ErrResourceNotFound, indistinguishable from a missing course.
func (s *AuthorizationService) RequireAccess(ctx context.Context, courseID, userID int64) error {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to get course: %w", err)
	}
	if course == nil {
		return apperrors.ErrResourceNotFound
	}
	if course.InstructorID == userID {
		return nil
	}

	hasAccess, err := s.accesses.HasAccess(ctx, courseID, userID)
	if err != nil {
		return fmt.Errorf("failed to check access: %w", err)
	}
	if !hasAccess {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

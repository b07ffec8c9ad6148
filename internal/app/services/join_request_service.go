package services

import (
	"context"
	"fmt"

	"github.com/eduplat/courses/internal/app/auth"
	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/logger"
)

// JoinRequestService defines the interface for the join-request workflow
type JoinRequestService interface {
	SendJoinRequest(ctx context.Context, courseID, requesterID int64) (created bool, err error)
	ListJoinRequests(ctx context.Context, courseID, ownerID int64) ([]dto.JoinRequestResponse, error)
	AnswerJoinRequests(ctx context.Context, courseID, ownerID int64, req *dto.AnswerJoinRequestsRequest) error
}

// joinRequestServiceImpl implements JoinRequestService
type joinRequestServiceImpl struct {
	requests JoinRequestStore
	courses  CourseStore
	authz    *auth.AuthorizationService
	userDir  UserDirectory
}

// NewJoinRequestService creates a new JoinRequestService
func NewJoinRequestService(requests JoinRequestStore, courses CourseStore, authz *auth.AuthorizationService, userDir UserDirectory) JoinRequestService {
	return &joinRequestServiceImpl{
		requests: requests,
		courses:  courses,
		authz:    authz,
		userDir:  userDir,
	}
}

// SendJoinRequest records a pending enrollment ask. Repeated asks for the
// same (course, user) pair return the existing request; created reports
// whether this call made a new one.
func (s *joinRequestServiceImpl) SendJoinRequest(ctx context.Context, courseID, requesterID int64) (bool, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return false, fmt.Errorf("error getting course: %w", err)
	}
	if course == nil {
		return false, apperrors.ErrResourceNotFound
	}

	_, created, err := s.requests.GetOrCreate(ctx, courseID, requesterID)
	if err != nil {
		return false, fmt.Errorf("error creating join request: %w", err)
	}

	return created, nil
}

// ListJoinRequests returns a course's pending requests for its owner, each
// enriched with the requester's identity when the user directory answers.
// One batch lookup covers all distinct user ids; a directory failure just
// produces unenriched requests.
func (s *joinRequestServiceImpl) ListJoinRequests(ctx context.Context, courseID, ownerID int64) ([]dto.JoinRequestResponse, error) {
	if _, err := s.authz.RequireCourseOwner(ctx, courseID, ownerID); err != nil {
		return nil, err
	}

	requests, err := s.requests.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error getting join requests: %w", err)
	}

	seen := make(map[int64]bool)
	var userIDs []int64
	for _, request := range requests {
		if !seen[request.UserID] {
			seen[request.UserID] = true
			userIDs = append(userIDs, request.UserID)
		}
	}

	identities := make(map[int64]dto.UserIdentity)
	if len(userIDs) > 0 {
		resolved, err := s.userDir.GetUsers(ctx, userIDs)
		if err != nil {
			logger.Warn().Err(err).Int64("courseID", courseID).Msg("Failed to resolve join request identities")
		} else {
			for _, identity := range resolved {
				identities[identity.ID] = dto.UserIdentity{
					ID:           identity.ID,
					Username:     identity.Username,
					IsInstructor: identity.IsInstructor,
				}
			}
		}
	}

	responses := make([]dto.JoinRequestResponse, 0, len(requests))
	for _, request := range requests {
		response := dto.JoinRequestResponse{
			ID:       request.ID,
			CourseID: request.CourseID,
			UserID:   request.UserID,
		}
		if identity, ok := identities[request.UserID]; ok {
			response.User = &identity
		}
		responses = append(responses, response)
	}

	return responses, nil
}

// AnswerJoinRequests resolves a batch of decisions for a course's owner.
// Accepted requests turn into access grants; every matched request is
// removed whether accepted or rejected. Ids belonging to other courses are
// ignored.
func (s *joinRequestServiceImpl) AnswerJoinRequests(ctx context.Context, courseID, ownerID int64, req *dto.AnswerJoinRequestsRequest) error {
	if _, err := s.authz.RequireCourseOwner(ctx, courseID, ownerID); err != nil {
		return err
	}

	requestIDs := make([]int64, 0, len(req.Requests))
	accepted := make(map[int64]bool, len(req.Requests))
	for _, decision := range req.Requests {
		requestIDs = append(requestIDs, decision.ID)
		accepted[decision.ID] = decision.Accept
	}

	if err := s.requests.ResolveBatch(ctx, courseID, requestIDs, accepted); err != nil {
		return fmt.Errorf("error resolving join requests: %w", err)
	}

	return nil
}

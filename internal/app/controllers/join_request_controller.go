package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/app/services"
	"github.com/eduplat/courses/internal/middleware"
	"github.com/eduplat/courses/internal/pkg/apperrors"
)

// JoinRequestController handles the join-request workflow
type JoinRequestController struct {
	joinRequestService services.JoinRequestService
}

// NewJoinRequestController creates a new JoinRequestController
func NewJoinRequestController(joinRequestService services.JoinRequestService) *JoinRequestController {
	return &JoinRequestController{joinRequestService: joinRequestService}
}

// SendJoinRequest handles asking to join a course
// @Summary Send a join request
// @Description Records the authenticated user's ask to join a course. Asking again before the instructor answers is harmless.
// @Tags join-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.DetailResponse "Request already pending"
// @Success 201 {object} dto.DetailResponse "Request sent"
// @Failure 401 {object} dto.DetailResponse "Missing or invalid token"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id}/requests [post]
func (c *JoinRequestController) SendJoinRequest(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	created, err := c.joinRequestService.SendJoinRequest(ctx.Request.Context(), courseID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if created {
		ctx.JSON(http.StatusCreated, dto.NewDetailResponse("Request sent"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDetailResponse("Request already sent"))
}

// ListJoinRequests handles listing a course's pending join requests
// @Summary List join requests
// @Description Retrieves a course's pending join requests for its owner, enriched with requester identities when the user service resolves them.
// @Tags join-requests
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} dto.JoinRequestResponse "Join requests retrieved"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Course not found or not owned by the caller"
// @Router /courses/{id}/requests [get]
func (c *JoinRequestController) ListJoinRequests(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	requests, err := c.joinRequestService.ListJoinRequests(ctx.Request.Context(), courseID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, requests)
}

// AnswerJoinRequests handles resolving a batch of join requests
// @Summary Answer join requests
// @Description Accepts or rejects a batch of join requests for a course owned by the authenticated instructor. Accepted requesters are enrolled; every answered request disappears.
// @Tags join-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.AnswerJoinRequestsRequest true "Decisions"
// @Success 204 "Requests resolved"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Course not found or not owned by the caller"
// @Failure 422 {object} dto.DetailResponse "Invalid request body"
// @Router /courses/{id}/requests/answer [post]
func (c *JoinRequestController) AnswerJoinRequests(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AnswerJoinRequestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	if err := c.joinRequestService.AnswerJoinRequests(ctx.Request.Context(), courseID, middleware.UserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

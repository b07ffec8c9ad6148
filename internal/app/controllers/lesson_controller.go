package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/app/services"
	"github.com/eduplat/courses/internal/middleware"
	"github.com/eduplat/courses/internal/pkg/apperrors"
)

// LessonController handles lesson related operations
type LessonController struct {
	lessonService services.LessonService
}

// NewLessonController creates a new LessonController
func NewLessonController(lessonService services.LessonService) *LessonController {
	return &LessonController{lessonService: lessonService}
}

// CreateLesson handles adding a lesson to a course
// @Summary Create a lesson
// @Description Adds a lesson to a course. The lesson is sent as a multipart form so a video file can travel with it.
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param name formData string true "Lesson name"
// @Param content formData string true "Lesson content"
// @Param number formData int false "Lesson order, defaults to 1"
// @Param quiz_id formData int false "Attached quiz ID"
// @Param video formData file false "Lesson video"
// @Success 201 {object} dto.LessonResponse "Lesson created"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Failure 422 {object} dto.DetailResponse "Invalid form"
// @Router /courses/{id}/lessons [post]
func (c *LessonController) CreateLesson(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateLessonRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	video, err := ctx.FormFile("video")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid video upload"))
		return
	}

	created, err := c.lessonService.CreateLesson(ctx.Request.Context(), courseID, &req, video)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// ListLessons handles listing a course's lessons
// @Summary List lessons
// @Description Retrieves a course's lessons ordered by number. Depending on deployment configuration the listing is either public or restricted to enrolled users.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {array} dto.LessonResponse "Lessons retrieved"
// @Failure 401 {object} dto.DetailResponse "Missing or invalid token"
// @Failure 404 {object} dto.DetailResponse "Course not found or caller not enrolled"
// @Router /courses/{id}/lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lessons, err := c.lessonService.ListLessons(ctx.Request.Context(), courseID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lessons)
}

// GetLesson handles retrieving a single lesson
// @Summary Get lesson by ID
// @Description Retrieves one lesson of a course the caller is enrolled in or owns.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 200 {object} dto.LessonResponse "Lesson retrieved"
// @Failure 401 {object} dto.DetailResponse "Missing or invalid token"
// @Failure 404 {object} dto.DetailResponse "Lesson not found or caller not enrolled"
// @Router /courses/{id}/lessons/{lessonId} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lessonID, err := parseIDParam(ctx, "lessonId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	lesson, err := c.lessonService.GetLesson(ctx.Request.Context(), courseID, lessonID, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, lesson)
}

// UpdateLesson handles a partial update of a lesson
// @Summary Update lesson
// @Description Applies the provided form fields to a lesson of a course owned by the authenticated instructor. A new video replaces the stored one.
// @Tags lessons
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param name formData string false "Lesson name"
// @Param content formData string false "Lesson content"
// @Param number formData int false "Lesson order"
// @Param quiz_id formData int false "Attached quiz ID"
// @Param video formData file false "Replacement video"
// @Success 200 {object} dto.LessonResponse "Lesson updated"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Lesson not found or course not owned by the caller"
// @Failure 422 {object} dto.DetailResponse "Invalid form"
// @Router /courses/{id}/lessons/{lessonId} [put]
func (c *LessonController) UpdateLesson(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lessonID, err := parseIDParam(ctx, "lessonId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateLessonRequest
	if err := ctx.ShouldBind(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	video, err := ctx.FormFile("video")
	if err != nil && err != http.ErrMissingFile {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("Invalid video upload"))
		return
	}

	updated, err := c.lessonService.UpdateLesson(ctx.Request.Context(), courseID, lessonID, middleware.UserID(ctx), &req, video)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteLesson handles deleting a lesson
// @Summary Delete lesson
// @Description Deletes a lesson from a course owned by the authenticated instructor.
// @Tags lessons
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Success 204 "Lesson deleted"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Lesson not found or course not owned by the caller"
// @Router /courses/{id}/lessons/{lessonId} [delete]
func (c *LessonController) DeleteLesson(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	lessonID, err := parseIDParam(ctx, "lessonId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.lessonService.DeleteLesson(ctx.Request.Context(), courseID, lessonID, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/models/dto"
	"github.com/eduplat/courses/internal/app/services"
	"github.com/eduplat/courses/internal/middleware"
	"github.com/eduplat/courses/internal/pkg/apperrors"
	"github.com/eduplat/courses/internal/pkg/helpers"
)

// CourseController handles course related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse handles creating a course for the authenticated instructor
// @Summary Create a course
// @Description Creates a course owned by the authenticated instructor and returns it together with its join code.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course to create"
// @Success 201 {object} dto.CreatedCourseResponse "Course created"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 422 {object} dto.DetailResponse "Invalid request body"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	created, err := c.courseService.CreateCourse(ctx.Request.Context(), middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// ListCourses handles the paginated public course listing
// @Summary List courses
// @Description Retrieves all courses with their lesson counts, paginated by offset and limit.
// @Tags courses
// @Produce json
// @Param offset query int false "Number of courses to skip" default(0) minimum(0)
// @Param limit query int false "Page size (default: 10, max: 100)" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.CourseListResponse "Courses retrieved"
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	response, err := c.courseService.ListCourses(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetCourse handles retrieving a course with its lessons
// @Summary Get course by ID
// @Description Retrieves a course, its lessons ordered by number and the instructor's identity when the user service resolves it.
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.CourseDetailResponse "Course retrieved"
// @Failure 404 {object} dto.DetailResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.courseService.GetCourse(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// UpdateCourse handles a partial update of an owned course
// @Summary Update course
// @Description Applies the provided fields to a course owned by the authenticated instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} dto.CourseResponse "Course updated"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Course not found or not owned by the caller"
// @Failure 422 {object} dto.DetailResponse "Invalid request body"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	updated, err := c.courseService.UpdateCourse(ctx.Request.Context(), courseID, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// DeleteCourse handles deleting an owned course
// @Summary Delete course
// @Description Deletes a course owned by the authenticated instructor together with its lessons, accesses and join requests.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 204 "Course deleted"
// @Failure 401 {object} dto.DetailResponse "Missing, invalid or non-instructor token"
// @Failure 404 {object} dto.DetailResponse "Course not found or not owned by the caller"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	courseID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), courseID, middleware.UserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// JoinCourse handles redeeming a course code
// @Summary Join a course by code
// @Description Enrolls the authenticated user in the course matching the submitted code. Redeeming the same code twice is harmless.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JoinCourseRequest true "Course code"
// @Success 200 {object} dto.DetailResponse "Enrollment confirmed"
// @Failure 401 {object} dto.DetailResponse "Missing or invalid token"
// @Failure 404 {object} dto.DetailResponse "Unknown course code"
// @Failure 422 {object} dto.DetailResponse "Invalid request body"
// @Router /courses/join [post]
func (c *CourseController) JoinCourse(ctx *gin.Context) {
	var req dto.JoinCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(err.Error()))
		return
	}

	alreadyEnrolled, err := c.courseService.RedeemCode(ctx.Request.Context(), req.Code, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if alreadyEnrolled {
		ctx.JSON(http.StatusOK, dto.NewDetailResponse("You have already joined this course"))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDetailResponse("Success"))
}

// parseIDParam parses a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("Invalid " + name + " parameter")
	}
	return id, nil
}

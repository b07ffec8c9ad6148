package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplat/courses/internal/app/controllers"
	"github.com/eduplat/courses/internal/middleware"
)

// SetupRouter configures all application routes. openLessonList publishes
// the lesson listing without a token; lesson contents stay gated either way.
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	lessonController *controllers.LessonController,
	joinRequestController *controllers.JoinRequestController,
	authMiddleware *middleware.AuthMiddleware,
	openLessonList bool,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	courses := router.Group("/courses")
	{
		// Public catalog
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)

		if openLessonList {
			courses.GET("/:id/lessons", lessonController.ListLessons)
		}

		// Any authenticated user
		authenticated := courses.Group("")
		authenticated.Use(authMiddleware.RequireAuth())
		{
			authenticated.POST("/join", courseController.JoinCourse)
			authenticated.POST("/:id/requests", joinRequestController.SendJoinRequest)
			authenticated.GET("/:id/lessons/:lessonId", lessonController.GetLesson)
			if !openLessonList {
				authenticated.GET("/:id/lessons", lessonController.ListLessons)
			}

			// Instructors only
			instructors := authenticated.Group("")
			instructors.Use(authMiddleware.RequireInstructor())
			{
				instructors.POST("", courseController.CreateCourse)
				instructors.PUT("/:id", courseController.UpdateCourse)
				instructors.DELETE("/:id", courseController.DeleteCourse)

				instructors.POST("/:id/lessons", lessonController.CreateLesson)
				instructors.PUT("/:id/lessons/:lessonId", lessonController.UpdateLesson)
				instructors.DELETE("/:id/lessons/:lessonId", lessonController.DeleteLesson)

				instructors.GET("/:id/requests", joinRequestController.ListJoinRequests)
				instructors.POST("/:id/requests/answer", joinRequestController.AnswerJoinRequests)
			}
		}
	}
}

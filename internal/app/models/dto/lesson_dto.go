package dto

// CreateLessonRequest is the multipart form for creating a lesson. The
// video file itself travels alongside the form and is handled separately.
type CreateLessonRequest struct {
	Name    string `form:"name" binding:"required,max=200"`
	Content string `form:"content" binding:"required"`
	Number  *int   `form:"number" binding:"omitempty,min=1"`
	QuizID  *int64 `form:"quiz_id" binding:"omitempty,min=1"`
}

// UpdateLessonRequest is the multipart form for a partial lesson update.
type UpdateLessonRequest struct {
	Name    *string `form:"name" binding:"omitempty,max=200"`
	Content *string `form:"content"`
	Number  *int    `form:"number" binding:"omitempty,min=1"`
	QuizID  *int64  `form:"quiz_id" binding:"omitempty,min=1"`
}

// LessonResponse is the lesson representation returned by the API.
type LessonResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	Number   int     `json:"number"`
	Video    *string `json:"video,omitempty"`
	CourseID int64   `json:"course_id"`
	QuizID   *int64  `json:"quiz_id,omitempty"`
}

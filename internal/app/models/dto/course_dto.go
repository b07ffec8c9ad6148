package dto

// CreateCourseRequest is the body for creating a course.
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description"`
}

// UpdateCourseRequest is the body for a partial course update. Only the
// fields present are applied.
type UpdateCourseRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description"`
}

// JoinCourseRequest is the body for redeeming a course code.
type JoinCourseRequest struct {
	Code string `json:"code" binding:"required"`
}

// CourseResponse is the public course representation. The course code is
// deliberately absent; it is only disclosed to the creating instructor.
type CourseResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	InstructorID int64   `json:"instructor_id"`
	LessonCount  int     `json:"lesson_count"`
}

// CreatedCourseResponse is returned to the instructor who created the
// course and includes the redeemable code.
type CreatedCourseResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	InstructorID int64   `json:"instructor_id"`
	Code         string  `json:"code"`
}

// CourseDetailResponse is the public course detail, lessons ordered by
// number. Instructor identity is best-effort enrichment and may be absent.
type CourseDetailResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  *string          `json:"description"`
	InstructorID int64            `json:"instructor_id"`
	Instructor   *UserIdentity    `json:"instructor,omitempty"`
	Lessons      []LessonResponse `json:"lessons"`
}

// CourseListResponse is the paginated course listing envelope.
type CourseListResponse struct {
	Items []CourseResponse `json:"items"`
	Count int64            `json:"count"`
}

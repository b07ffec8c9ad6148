package models

// Lesson represents a single lesson inside a course. Lessons are presented
// ordered by Number ascending; Number is not unique within a course.
type Lesson struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Content  string  `json:"content" db:"content"`
	Number   int     `json:"number" db:"number"`
	Video    *string `json:"video,omitempty" db:"video"`
	CourseID int64   `json:"course_id" db:"course_id"`
	QuizID   *int64  `json:"quiz_id,omitempty" db:"quiz_id"`
}

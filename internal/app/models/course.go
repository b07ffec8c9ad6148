package models

// CodeLength is the fixed total length of a course code: the instructor id
// in decimal followed by random alphanumeric padding.
const CodeLength = 10

// Course represents a course owned by an instructor.
type Course struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Description  *string `json:"description,omitempty" db:"description"`
	InstructorID int64   `json:"instructor_id" db:"instructor_id"`
	// Code is a unique token redeemable for immediate enrollment. Set once
	// at creation, never changed afterwards.
	Code string `json:"code" db:"code"`

	// Related entities
	Lessons []*Lesson `json:"lessons,omitempty"`
}

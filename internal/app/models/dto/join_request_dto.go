package dto

// UserIdentity is a display identity resolved through the user service.
type UserIdentity struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	IsInstructor bool   `json:"is_instructor"`
}

// JoinRequestResponse is a pending join request, optionally enriched with
// the requesting user's identity. User is nil when the directory lookup
// failed or the user service no longer knows the id.
type JoinRequestResponse struct {
	ID       int64         `json:"id"`
	CourseID int64         `json:"course_id"`
	UserID   int64         `json:"user_id"`
	User     *UserIdentity `json:"user,omitempty"`
}

// JoinRequestDecision is one instructor decision in an answer batch.
type JoinRequestDecision struct {
	ID     int64 `json:"id" binding:"required,min=1"`
	Accept bool  `json:"accept"`
}

// AnswerJoinRequestsRequest is the body for resolving a batch of join
// requests.
type AnswerJoinRequestsRequest struct {
	Requests []JoinRequestDecision `json:"requests" binding:"required,dive"`
}

package dto

// DetailResponse carries a human-readable detail string. Both error
// responses and simple confirmations use this shape; it is the contract
// shared across the platform's services.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// NewDetailResponse creates a DetailResponse
func NewDetailResponse(detail string) DetailResponse {
	return DetailResponse{Detail: detail}
}

package handler

// errorResponse documents the error envelope rendered by the API error handler.
type errorResponse struct {
	Kind    string `json:"kind" example:"not_found"`
	Message string `json:"message" example:"User does not exist"`
}

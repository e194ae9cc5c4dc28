package api

// ErrorResponse is the standard error body for every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SignupResponse is the body of a successful signup.
type SignupResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// CreateDesignResponse is the body of a successful design creation.
type CreateDesignResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

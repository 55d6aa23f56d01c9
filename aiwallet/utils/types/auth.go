package types

type LoginRequest struct {
	Username string `json:"username"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

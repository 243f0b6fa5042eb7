package dto

import "time"

// APIResponse is the envelope every JSON endpoint returns. Callers check
// Success for domain-level failures in addition to the HTTP status.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success wraps a payload in the standard envelope.
func Success(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Failure wraps an error message in the standard envelope.
func Failure(message string) APIResponse {
	return APIResponse{Success: false, Error: message}
}

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Name string `json:"name"`
}

// AdminLoginRequest payload.
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminSessionResponse carries a fresh session token.
type AdminSessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminSessionInfo describes the current validated session.
type AdminSessionInfo struct {
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expiresAt"`
}

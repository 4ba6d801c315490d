package models

// RegisterResponse represents the response after user registration.
// The password hash never leaves the service layer.
type RegisterResponse struct {
	ID    string `json:"id"` // UUID
	Email string `json:"email"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	ID    string `json:"id"` // UUID
	Email string `json:"email"`
	Token string `json:"token"` // JWT token
}

package models

// LoginRequest is the payload for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"` // unix seconds
}

// RegisterRequest is the payload for creating an admin account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// PublishResultRequest is the payload for publishing a region's results
type PublishResultRequest struct {
	Date   string       `json:"date" binding:"required"`
	Region string       `json:"region" binding:"required"`
	Result RegionResult `json:"result" binding:"required"`
}

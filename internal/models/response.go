package models

// HealthResponse represents the response structure for health check endpoints
type HealthResponse struct {
	Message string `json:"message" example:"AI Service up!"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"No route matches GET /unknown"`
}

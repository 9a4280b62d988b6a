package web

// ErrorResponse is returned for failed API requests
// @Description Error details
type ErrorResponse struct {
	// Error message
	Error string `json:"error" example:"User or password are wrong"`
}

// ValidationErrorResponse lists the failing signup fields
// @Description Field-level validation errors
type ValidationErrorResponse struct {
	Error string `json:"error" example:"Invalid signup form"`
	// Message per field, keyed by the field's json name
	Fields map[string]string `json:"fields" example:"passwordConfirmation:Passwords do not match"`
}

// StatusResponse acknowledges a successful request
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

package errors

// ErrorResponse is the JSON error envelope returned by the API.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// ErrorDetail carries the user-facing message (the innermost hint) and any
// reportable details attached to the error.
type ErrorDetail struct {
	Display string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

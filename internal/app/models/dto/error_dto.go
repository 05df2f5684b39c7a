package dto

// ErrorResponse is the JSON body returned for every failed request.
// Details carries the underlying store error text and is only populated
// in development mode.
type ErrorResponse struct {
	Error   string `json:"error" example:"Student not found"`
	Details string `json:"details,omitempty"`
}

// NewErrorResponse creates an error response with the given message.
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

// WithDetails attaches diagnostic detail to the response.
func (e *ErrorResponse) WithDetails(details string) *ErrorResponse {
	e.Details = details
	return e
}

// Package jsonresponse enables consistent responses across all handlers.
//
// The API keeps the historical client contract: domain failures are "soft",
// meaning HTTP 200 with {"status": false, "message": ...}. Authorization and
// malformed-request failures use real HTTP status codes.
package jsonresponse

// Body is the common response envelope.
type Body struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data into a successful envelope.
func OK(message string, data any) Body {
	return Body{Status: true, Message: message, Data: data}
}

// Fail wraps a message into a soft failure envelope.
func Fail(message string) Body {
	return Body{Status: false, Message: message}
}

// jsonError provides type for explicit json encoded error response.
type jsonError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) jsonError {
	return jsonError{Error: err.Error()}
}

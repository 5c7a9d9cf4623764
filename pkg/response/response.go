// Package response holds the small JSON bodies the API uses alongside
// raw document payloads: {"message": ...} for outcomes and
// {"error": ...} for failures.
package response

// Body is a message or error envelope.
type Body struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Message wraps a human-readable outcome.
func Message(msg string) Body {
	return Body{Message: msg}
}

// Error wraps a human-readable failure.
func Error(err string) Body {
	return Body{Error: err}
}

// Package envelope defines the uniform response body served by every route.
// Fallback substitution is still a success; the warning field is the only
// externally visible difference between real and placeholder data.
package envelope

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Warning string `json:"warning,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fallback(data any, warning string) Envelope {
	return Envelope{Success: true, Data: data, Warning: warning}
}

func Failure(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

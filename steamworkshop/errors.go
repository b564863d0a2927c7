package steamworkshop

import "fmt"

// StatusError is returned when the Steam Web API
// responds with a non-success status code.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d", e.Method, e.URL, e.StatusCode)
}

// MissingFieldError is returned when a response does not
// have the expected shape. Field is the dotted JSON path
// of the first missing field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("response missing field %s", e.Field)
}

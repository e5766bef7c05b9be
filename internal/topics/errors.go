package topics

import "fmt"

// APIError represents a non-2xx response from a Bunka server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bunka server error %d: %s", e.StatusCode, e.Message)
}

// AuthenticationError is returned when the server responds with 401 Unauthorized.
type AuthenticationError struct{ APIError }

// NotFoundError is returned when the server responds with 404 Not Found,
// typically because no model has been fitted yet.
type NotFoundError struct{ APIError }

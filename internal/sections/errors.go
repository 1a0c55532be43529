package sections

import "fmt"

// LoadError represents a sections configuration that could not be loaded.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sections load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("sections load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

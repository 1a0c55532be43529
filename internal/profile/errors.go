package profile

import "fmt"

// LoadError represents a profile file that could not be read or parsed.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a profile that parsed but is structurally invalid.
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("profile validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

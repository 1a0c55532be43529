package resolve

import "fmt"

// ResolveError represents a field that cannot be resolved through any tier,
// or an overrides file that cannot be loaded.
type ResolveError struct {
	Field   string
	Message string
	Cause   error
}

func (e *ResolveError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("resolve error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("resolve error: %s", msg)
}

func (e *ResolveError) Unwrap() error {
	return e.Cause
}

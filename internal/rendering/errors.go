// Package rendering provides functionality to render lego-section templates
// and write the assembled cover letter.
package rendering

import "fmt"

// TemplateError represents an error parsing or executing a section template,
// including a template referencing a placeholder the resolver cannot fill.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	msg := e.Message
	if e.Template != "" {
		msg = fmt.Sprintf("%s: %s", e.Template, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("template error: %s", msg)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure writing the final document.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("write error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("write error for %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

package rendering

import "fmt"

// RenderError represents a layout execution failure.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OutlineError represents a failure parsing rendered output back into a
// document outline.
type OutlineError struct {
	Message string
	Cause   error
}

func (e *OutlineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("outline error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("outline error: %s", e.Message)
}

func (e *OutlineError) Unwrap() error {
	return e.Cause
}

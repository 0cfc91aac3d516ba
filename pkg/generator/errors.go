package generator

import "fmt"

// UnsupportedFrameworkError reports a detected framework with no registered
// generator. Dispatch never falls back to a default generator: a pipeline
// invoking the wrong build tool is worse than none.
type UnsupportedFrameworkError struct {
	Framework string
}

func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("no generator registered for framework '%s'", e.Framework)
}

// ContextCollisionError reports a generator extra redefining a base context
// key. Extras must be strictly additive.
type ContextCollisionError struct {
	Key string
}

func (e *ContextCollisionError) Error() string {
	return fmt.Sprintf("template context key '%s' defined by more than one source", e.Key)
}

// RenderError reports a template that failed to render.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering template '%s': %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// WriteError reports an artifact that could not be written, or one that
// already exists when overwriting was not requested.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing artifact '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

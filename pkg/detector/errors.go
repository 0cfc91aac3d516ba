package detector

import "fmt"

// PathError reports an unusable project path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot access project path '%s': %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// DetectionError reports that no rule matched the project's signals.
type DetectionError struct {
	Root string
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("no supported framework detected in '%s' (supported: %s); use --framework to specify one explicitly",
		e.Root, frameworkList())
}

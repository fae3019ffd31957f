package runner

import "fmt"

// ClassResolutionError reports a class that could not be resolved from the
// assembled classpath.
type ClassResolutionError struct {
	Class string
	Err   error
}

func (e *ClassResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot resolve class %s: %v", e.Class, e.Err)
	}

	return fmt.Sprintf("cannot resolve class %s from classpath", e.Class)
}

func (e *ClassResolutionError) Unwrap() error {
	return e.Err
}

// MetadataIndexError reports an annotation index that could not be read while
// discovery-by-scanning was enabled. It always aborts before any task runs.
type MetadataIndexError struct {
	Entry string
	Err   error
}

func (e *MetadataIndexError) Error() string {
	return fmt.Sprintf("cannot read annotation index in %s: %v", e.Entry, e.Err)
}

func (e *MetadataIndexError) Unwrap() error {
	return e.Err
}

package annotations

import "errors"

var (
	// ErrAnnotationNotFound is returned when no annotation exists for an ID
	ErrAnnotationNotFound = errors.New("annotation not found")
)

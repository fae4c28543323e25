package types

import (
	"github.com/markpoint/annotate-api/internal/database"
	"github.com/markpoint/annotate-api/internal/services/annotations"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	AnnotationService annotations.Service

	// IncludeMetadata is the default for subtitle exports when the request
	// does not say otherwise
	IncludeMetadata bool
}

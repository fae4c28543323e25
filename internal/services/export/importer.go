package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/markpoint/annotate-api/internal/models"
	"github.com/markpoint/annotate-api/internal/services/annotations"
)

// ImportJSON reads an export envelope and persists every record through the
// service.
//
// Import is not atomic across the batch: a malformed record aborts the
// remaining records but already-persisted ones stay in the store. The
// returned slice holds everything persisted before the failure.
func ImportJSON(ctx context.Context, data []byte, svc annotations.Service) ([]models.Annotation, error) {
	var envelope struct {
		Annotations []json.RawMessage `json:"annotations"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing import envelope: %w", err)
	}

	imported := make([]models.Annotation, 0, len(envelope.Annotations))
	for i, raw := range envelope.Annotations {
		var annotation models.Annotation
		if err := json.Unmarshal(raw, &annotation); err != nil {
			return imported, fmt.Errorf("importing record %d: %w", i, err)
		}
		// id and media_id have no sensible default; a record without them
		// is malformed, not incomplete
		if annotation.ID == "" {
			return imported, fmt.Errorf("importing record %d: missing id", i)
		}
		if annotation.MediaID == "" {
			return imported, fmt.Errorf("importing record %d: missing media_id", i)
		}
		normalize(&annotation)

		if _, err := svc.Save(ctx, &annotation); err != nil {
			return imported, fmt.Errorf("importing record %d: %w", i, err)
		}
		imported = append(imported, annotation)
	}
	return imported, nil
}

// normalize fills defaults for fields an envelope may omit entirely
func normalize(a *models.Annotation) {
	if a.Category == "" {
		a.Category = models.CategoryGeneral
	}
	if a.Status == "" {
		a.Status = models.StatusOpen
	}
	if a.Metadata == nil {
		a.Metadata = map[string]string{}
	}
}

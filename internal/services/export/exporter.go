// Package export transforms annotation snapshots into WebVTT, SRT and JSON
// representations, and imports JSON envelopes back into the store.
package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/markpoint/annotate-api/internal/models"
	"github.com/markpoint/annotate-api/pkg/timecode"
)

// pointDisplayMS is the synthesized display duration for point annotations.
// Subtitle viewers need an end time, so exports give point annotations a
// two-second cue without mutating the stored record.
const pointDisplayMS = 2000

// envelopeVersion identifies the JSON export schema
const envelopeVersion = "1.0"

// Envelope is the JSON export container
type Envelope struct {
	Version     string              `json:"version"`
	ExportedAt  time.Time           `json:"exported_at"`
	Count       int                 `json:"count"`
	Annotations []models.Annotation `json:"annotations"`
}

// ToWebVTT renders annotations as a WebVTT file. Cues are emitted in
// ascending start order with 1-based numeric identifiers.
func ToWebVTT(annotations []models.Annotation, includeMetadata bool) string {
	lines := []string{"WEBVTT", ""}
	lines = append(lines, cues(annotations, timecode.FormatVTT, includeMetadata)...)
	return strings.Join(lines, "\n")
}

// ToSRT renders annotations as a SubRip file, identical in structure to the
// WebVTT export but with comma timecodes and no header.
func ToSRT(annotations []models.Annotation, includeMetadata bool) string {
	return strings.Join(cues(annotations, timecode.FormatSRT, includeMetadata), "\n")
}

func cues(annotations []models.Annotation, format timecode.Format, includeMetadata bool) []string {
	ordered := make([]models.Annotation, len(annotations))
	copy(ordered, annotations)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartMS < ordered[j].StartMS
	})

	var lines []string
	for i, ann := range ordered {
		endMS := ann.StartMS + pointDisplayMS
		if ann.EndMS != nil {
			endMS = *ann.EndMS
		}

		lines = append(lines,
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s --> %s", timecode.FromMS(ann.StartMS, format), timecode.FromMS(endMS, format)),
			cueText(ann, includeMetadata),
			"",
		)
	}
	return lines
}

func cueText(ann models.Annotation, includeMetadata bool) string {
	text := ann.Text
	if includeMetadata {
		text = fmt.Sprintf("[%s] %s", strings.ToUpper(string(ann.Category)), text)
		if ann.Status != models.StatusOpen {
			text += fmt.Sprintf(" (%s)", ann.Status)
		}
	}
	return text
}

// ToJSON renders annotations as a versioned export envelope. Annotations are
// emitted in the order given; callers exporting a store snapshot already
// hold them in start-time order.
func ToJSON(annotations []models.Annotation) ([]byte, error) {
	envelope := Envelope{
		Version:     envelopeVersion,
		ExportedAt:  time.Now().UTC(),
		Count:       len(annotations),
		Annotations: annotations,
	}

	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export envelope: %w", err)
	}
	return data, nil
}

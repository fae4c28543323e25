package models

import (
	"time"

	"github.com/google/uuid"
)

// PointWindowMS is the visibility window (in milliseconds) around a point
// annotation during playback. A point annotation matches any time within
// this distance of its start.
const PointWindowMS = 500

// Shape is a normalized rectangle for on-frame overlays. Coordinates are
// percentages in [0,1] so overlays stay resolution-independent. The range is
// a contract with callers, not enforced here.
type Shape struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Annotation is a frame-accurate note attached to a media file.
//
// Times are integer milliseconds to avoid floating-point drift across
// repeated timecode conversions. A nil EndMS (or one at or before StartMS)
// makes this a point annotation; otherwise it spans [StartMS, EndMS].
type Annotation struct {
	ID       string   `json:"id" gorm:"primaryKey"`
	MediaID  string   `json:"media_id" gorm:"not null;index:idx_media_time,priority:1;index:idx_media_status,priority:1"`
	StartMS  int64    `json:"start_ms" gorm:"not null;index:idx_media_time,priority:2"`
	EndMS    *int64   `json:"end_ms"`
	Text     string   `json:"text" gorm:"not null"`
	Category Category `json:"category" gorm:"not null;default:general"`
	Status   Status   `json:"status" gorm:"not null;default:open;index:idx_media_status,priority:2"`
	Author   string   `json:"author" gorm:"not null;default:anonymous"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Shape    *Shape            `json:"shape" gorm:"serializer:json"`
	ParentID *string           `json:"parent_id"`
	Metadata map[string]string `json:"metadata" gorm:"serializer:json"`
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}

// NewAnnotationParams holds the inputs for creating an annotation.
// Zero values for Category, Author and Metadata get defaults.
type NewAnnotationParams struct {
	MediaID  string
	StartMS  int64
	EndMS    *int64
	Text     string
	Category Category
	Author   string
	Shape    *Shape
	ParentID *string
	Metadata map[string]string
}

// NewAnnotation creates an annotation with a generated ID and fresh
// timestamps. It does not persist anything.
func NewAnnotation(p NewAnnotationParams) *Annotation {
	if p.Category == "" {
		p.Category = CategoryGeneral
	}
	if p.Author == "" {
		p.Author = "anonymous"
	}
	if p.Metadata == nil {
		p.Metadata = map[string]string{}
	}

	now := time.Now().UTC()
	return &Annotation{
		ID:        uuid.New().String(),
		MediaID:   p.MediaID,
		StartMS:   p.StartMS,
		EndMS:     p.EndMS,
		Text:      p.Text,
		Category:  p.Category,
		Status:    StatusOpen,
		Author:    p.Author,
		CreatedAt: now,
		UpdatedAt: now,
		Shape:     p.Shape,
		ParentID:  p.ParentID,
		Metadata:  p.Metadata,
	}
}

// IsRange reports whether this annotation spans a time range rather than a
// single point.
func (a *Annotation) IsRange() bool {
	return a.EndMS != nil && *a.EndMS > a.StartMS
}

// ContainsTime reports whether the annotation is visible at the given
// playback time. Range annotations match their inclusive span; point
// annotations match within PointWindowMS of their start.
func (a *Annotation) ContainsTime(timeMS int64) bool {
	if !a.IsRange() {
		diff := timeMS - a.StartMS
		if diff < 0 {
			diff = -diff
		}
		return diff <= PointWindowMS
	}
	return a.StartMS <= timeMS && timeMS <= *a.EndMS
}

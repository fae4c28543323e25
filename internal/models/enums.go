package models

import (
	"encoding/json"
	"fmt"
)

// Category classifies an annotation for filtering and review organization
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryPacing        Category = "pacing"
	CategoryPronunciation Category = "pronunciation"
	CategoryAudioQuality  Category = "audio_quality"
	CategoryTiming        Category = "timing"
	CategoryContent       Category = "content"
	CategoryTechnical     Category = "technical"
)

// Status tracks an annotation through the review workflow
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusWontFix    Status = "wont_fix"
)

// ParseCategory converts a string into a Category, failing on unknown values
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryGeneral, CategoryPacing, CategoryPronunciation,
		CategoryAudioQuality, CategoryTiming, CategoryContent, CategoryTechnical:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown annotation category: %q", s)
}

// ParseStatus converts a string into a Status, failing on unknown values
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusResolved, StatusWontFix:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown annotation status: %q", s)
}

// UnmarshalJSON validates categories at decode time. A missing or empty value
// falls back to the default category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*c = CategoryGeneral
		return nil
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalJSON validates statuses at decode time. A missing or empty value
// falls back to the default status.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = StatusOpen
		return nil
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Package timecode renders millisecond timestamps as subtitle timecodes and
// provides frame-boundary helpers.
package timecode

import (
	"fmt"
	"math"
)

// Format identifies a subtitle timecode dialect
type Format string

const (
	// FormatVTT renders HH:MM:SS.mmm (WebVTT)
	FormatVTT Format = "vtt"
	// FormatSRT renders HH:MM:SS,mmm (SubRip)
	FormatSRT Format = "srt"
)

// FromMS renders a millisecond timestamp as a zero-padded timecode string.
// Only integer division is used, so values are truncated, never rounded.
func FromMS(ms int64, format Format) string {
	hours := ms / 3600000
	remainder := ms % 3600000
	minutes := remainder / 60000
	remainder = remainder % 60000
	seconds := remainder / 1000
	milliseconds := remainder % 1000

	separator := "."
	if format == FormatSRT {
		separator = ","
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%03d", hours, minutes, seconds, separator, milliseconds)
}

// FrameDuration returns the duration of a single frame in milliseconds.
func FrameDuration(fps float64) float64 {
	return 1000.0 / fps
}

// SnapToFrame snaps a time value to the nearest frame boundary.
func SnapToFrame(timeMS int64, fps float64) int64 {
	frameDuration := FrameDuration(fps)
	frameNumber := math.Round(float64(timeMS) / frameDuration)
	return int64(frameNumber * frameDuration)
}

package annotations

import (
	"sync"

	"github.com/markpoint/annotate-api/internal/models"
)

// bucketIndex maps (media, second) to the IDs of annotations whose span
// touches that second. It answers "what is visible at time T" queries in
// near-constant time during playback, where a full table scan per rendered
// frame would not keep up.
//
// The index is derived state: it carries no information not already in the
// store and is always safe to discard and rebuild. Writers drop a media's
// entire map rather than patching it; writes are rare next to reads.
type bucketIndex struct {
	mu    sync.RWMutex
	media map[string]map[int64][]string
}

func newBucketIndex() *bucketIndex {
	return &bucketIndex{media: make(map[string]map[int64][]string)}
}

// rebuild replaces the bucket map for a media file from a store snapshot.
// Each annotation is registered in every second bucket its span touches.
func (b *bucketIndex) rebuild(mediaID string, anns []models.Annotation) {
	buckets := make(map[int64][]string)
	for _, ann := range anns {
		startSec := ann.StartMS / 1000
		endSec := startSec
		// Degenerate ranges (end_ms <= start_ms) are points and must still
		// land in their start bucket
		if ann.IsRange() {
			endSec = *ann.EndMS / 1000
		}

		for sec := startSec; sec <= endSec; sec++ {
			buckets[sec] = append(buckets[sec], ann.ID)
		}
	}

	b.mu.Lock()
	b.media[mediaID] = buckets
	b.mu.Unlock()
}

// candidates returns the union of IDs registered around the given second.
// The ±1 second margin catches point annotations whose visibility window
// straddles a bucket boundary. ok is false when the media has no index yet.
func (b *bucketIndex) candidates(mediaID string, second int64) (ids []string, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	buckets, ok := b.media[mediaID]
	if !ok {
		return nil, false
	}

	seen := make(map[string]struct{})
	for _, sec := range []int64{second - 1, second, second + 1} {
		for _, id := range buckets[sec] {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, true
}

// invalidate drops the bucket map for a media file
func (b *bucketIndex) invalidate(mediaID string) {
	b.mu.Lock()
	delete(b.media, mediaID)
	b.mu.Unlock()
}

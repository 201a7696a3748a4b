package domain

import "time"

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// MediaItem is one downloadable entry in the resolve output. Index is
// 1-based and contiguous within a single resolution, matching the source
// carousel or story order.
type MediaItem struct {
	URL         string
	Type        MediaType
	Index       int
	StoryItemID string    // story route only
	Date        time.Time // zero when the source item carries no timestamp
}

package domain

import "time"

// StoryItem is one item of a user's currently active stories, in the
// chronological order the library reports them.
type StoryItem struct {
	MediaID    string
	Username   string
	IsVideo    bool
	VideoURL   string
	DisplayURL string
	TakenAt    time.Time
}

package domain

import "time"

// Status is the terminal outcome of one resolve call.
type Status string

const (
	StatusSuccess         Status = "success"
	StatusNotFound        Status = "not_found"
	StatusPrivate         Status = "private"
	StatusLoginRequired   Status = "login_required"
	StatusRateLimited     Status = "rate_limited"
	StatusConnectionError Status = "connection_error"
	StatusError           Status = "error"
)

type Kind string

const (
	KindPost  Kind = "post"
	KindStory Kind = "story"
)

// Resolution is the sole externally observable output of a resolve call.
// It is produced exactly once per invocation and never mutated afterward.
type Resolution struct {
	Status      Status
	Kind        Kind
	Message     string
	Username    string
	Media       []MediaItem
	Caption     string
	Likes       int
	Comments    int
	Shortcode   string
	PostURL     string
	PostDate    time.Time
	ExtractedAt time.Time
	Elapsed     time.Duration
}

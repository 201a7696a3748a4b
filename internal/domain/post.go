package domain

import "time"

// CarouselNode is one child of a multi-media post. Position is the
// library-provided ordering hint, 0-based.
type CarouselNode struct {
	Position   int
	IsVideo    bool
	VideoURL   string
	DisplayURL string
}

type Post struct {
	Shortcode  string
	Username   string
	Caption    string
	Likes      int // -1 when the library does not report a count
	Comments   int // -1 when the library does not report a count
	TakenAt    time.Time
	IsVideo    bool
	VideoURL   string
	DisplayURL string
	Carousel   []CarouselNode // empty for single-media posts
}

package instagram

import (
	"context"
	"errors"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
)

// Typed outcomes every library failure is normalized to before it crosses
// this boundary. Callers classify with errors.Is; raw client errors never
// leave the implementation package.
var (
	ErrNotFound      = errors.New("content not found")
	ErrPrivate       = errors.New("account is private and cannot be accessed")
	ErrLoginRequired = errors.New("login required")
	ErrRateLimited   = errors.New("rate limited")
	ErrConnection    = errors.New("connection error")
)

type Client interface {
	// Login establishes a session when credentials or a saved session are
	// configured. Failing to log in is not fatal; anonymous access is left
	// to the library.
	Login() error

	// PostByShortcode resolves a post/reel/IGTV by its URL shortcode.
	PostByShortcode(ctx context.Context, shortcode string) (*domain.Post, error)

	// UserStories lists the currently active story items of a user, in
	// chronological order. An empty slice means no active stories.
	UserStories(ctx context.Context, username string) ([]domain.StoryItem, error)
}

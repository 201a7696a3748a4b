package parserimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
	"github.com/devson1024/vedinsta-resolver/internal/request"
)

func (p *ParserImpl) resolvePost(ctx context.Context, postURL string, started time.Time) *domain.Resolution {
	postURL = strings.TrimSpace(postURL)

	shortcode, ok := request.Shortcode(postURL)
	if !ok {
		return p.failure(domain.StatusError, "Could not extract post ID (shortcode) from URL", started)
	}

	p.Logger.Debug("Fetching post", "shortcode", shortcode)

	var post *domain.Post
	err := p.fetch(ctx, "PostByShortcode", func() error {
		fetched, err := p.Instagram.PostByShortcode(ctx, shortcode)
		if err != nil {
			return err
		}
		post = fetched
		return nil
	})
	if err != nil {
		return p.postFailure(err, started)
	}

	media := p.extractPostMedia(post)
	if len(media) == 0 {
		return p.failure(domain.StatusError, "No valid media URLs could be extracted from this post.", started)
	}

	username := post.Username
	if username == "" {
		username = "unknown_user"
	}

	res := &domain.Resolution{
		Status:    domain.StatusSuccess,
		Kind:      domain.KindPost,
		Username:  username,
		Media:     media,
		Caption:   post.Caption,
		Likes:     post.Likes,
		Comments:  post.Comments,
		Shortcode: shortcode,
		PostURL:   postURL,
		PostDate:  post.TakenAt,
	}
	p.finish(res, started)
	return res
}

func (p *ParserImpl) postFailure(err error, started time.Time) *domain.Resolution {
	switch {
	case errors.Is(err, instagram.ErrNotFound):
		return p.failure(domain.StatusNotFound, "Post not found or media is unavailable.", started)
	case errors.Is(err, instagram.ErrPrivate):
		return p.failure(domain.StatusPrivate, "Post is private or account requires following", started)
	case errors.Is(err, instagram.ErrLoginRequired):
		return p.failure(domain.StatusLoginRequired, "Login required to access this post", started)
	case errors.Is(err, instagram.ErrRateLimited):
		return p.failure(domain.StatusRateLimited, "Instagram rate limit exceeded. Try later.", started)
	case errors.Is(err, instagram.ErrConnection):
		return p.failure(domain.StatusConnectionError, fmt.Sprintf("Connection error after retries: %v", err), started)
	default:
		return p.failure(domain.StatusError, fmt.Sprintf("Failed to fetch post after retries: %v", err), started)
	}
}

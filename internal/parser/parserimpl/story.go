package parserimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
)

func (p *ParserImpl) resolveStories(ctx context.Context, username string, started time.Time) *domain.Resolution {
	p.Logger.Debug("Fetching stories", "username", username)

	var stories []domain.StoryItem
	err := p.fetch(ctx, "UserStories", func() error {
		fetched, err := p.Instagram.UserStories(ctx, username)
		if err != nil {
			return err
		}
		stories = fetched
		return nil
	})
	if err != nil {
		return p.storyFailure(err, username, started)
	}

	media := p.extractStoryMedia(username, stories)

	res := &domain.Resolution{
		Status:   domain.StatusSuccess,
		Kind:     domain.KindStory,
		Username: username,
		Media:    media,
		PostURL:  fmt.Sprintf("https://www.instagram.com/stories/%s/", username),
	}
	if len(media) == 0 {
		res.Message = "No active stories found for this user."
	} else {
		p.Logger.Debug("Found story items", "username", username, "count", len(media))
	}
	p.finish(res, started)
	return res
}

func (p *ParserImpl) extractStoryMedia(username string, stories []domain.StoryItem) []domain.MediaItem {
	media := make([]domain.MediaItem, 0, len(stories))
	for _, item := range stories {
		mediaURL := item.DisplayURL
		mediaType := domain.MediaImage
		if item.IsVideo {
			mediaURL = item.VideoURL
			mediaType = domain.MediaVideo
		}
		if mediaURL == "" {
			p.Logger.Warn("Missing URL for story item", "username", username)
			continue
		}
		media = append(media, domain.MediaItem{
			URL:         mediaURL,
			Type:        mediaType,
			Index:       len(media) + 1,
			StoryItemID: p.storyItemID(username, item),
			Date:        item.TakenAt,
		})
	}
	return media
}

// storyItemID synthesizes a best-effort stable identifier for a story
// item. Uniqueness is not guaranteed on the random fallback.
func (p *ParserImpl) storyItemID(username string, item domain.StoryItem) string {
	if !item.TakenAt.IsZero() {
		return fmt.Sprintf("%s_%d", username, item.TakenAt.Unix())
	}
	if item.MediaID != "" {
		return fmt.Sprintf("%s_%s", username, item.MediaID)
	}
	return fmt.Sprintf("%s_%d", username, 1000+p.rand.Intn(9000))
}

func (p *ParserImpl) storyFailure(err error, username string, started time.Time) *domain.Resolution {
	switch {
	case errors.Is(err, instagram.ErrNotFound):
		return p.failure(domain.StatusNotFound, fmt.Sprintf("User '%s' not found.", username), started)
	case errors.Is(err, instagram.ErrPrivate):
		return p.failure(domain.StatusPrivate, "Cannot fetch stories: Profile is private or requires following", started)
	case errors.Is(err, instagram.ErrLoginRequired):
		return p.failure(domain.StatusLoginRequired, "Login required to access stories", started)
	case errors.Is(err, instagram.ErrRateLimited):
		return p.failure(domain.StatusRateLimited, "Instagram rate limit exceeded fetching stories. Try later.", started)
	case errors.Is(err, instagram.ErrConnection):
		return p.failure(domain.StatusConnectionError, fmt.Sprintf("Connection error fetching stories: %v", err), started)
	default:
		return p.failure(domain.StatusError, fmt.Sprintf("Failed to fetch stories for %s: %v", username, err), started)
	}
}

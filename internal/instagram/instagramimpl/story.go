package instagramimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
)

func (ig *IgImpl) UserStories(ctx context.Context, userName string) ([]domain.StoryItem, error) {
	if err := ig.Pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	}

	ig.Logger.Debug("Get stories for username", "username", userName)

	profile, err := ig.Client.VisitProfile(userName)
	if err != nil {
		return nil, classifyError(err)
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: user %q", instagram.ErrNotFound, userName)
	}

	if u := profile.User; u != nil && u.IsPrivate && !u.Friendship.Following {
		return nil, fmt.Errorf("%w: %s", instagram.ErrPrivate, userName)
	}

	if profile.Stories == nil {
		return nil, nil
	}

	items := profile.Stories.Reel.Items
	stories := make([]domain.StoryItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		story := domain.StoryItem{
			MediaID:    item.GetID(),
			Username:   userName,
			IsVideo:    item.MediaType == mediaTypeVideo,
			VideoURL:   bestVideo(item.Videos),
			DisplayURL: bestImage(item.Images),
		}
		if item.TakenAt > 0 {
			story.TakenAt = time.Unix(item.TakenAt, 0).UTC()
		}
		stories = append(stories, story)
	}

	return stories, nil
}

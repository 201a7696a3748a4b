package instagramimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
)

const shortcodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// mediaIDFromShortcode expands the base64url shortcode into the numeric
// media ID the private API addresses media by.
func mediaIDFromShortcode(code string) (int64, error) {
	if code == "" {
		return 0, errors.New("empty shortcode")
	}
	var id int64
	for _, r := range code {
		idx := strings.IndexRune(shortcodeAlphabet, r)
		if idx < 0 {
			return 0, fmt.Errorf("invalid shortcode character %q", r)
		}
		id = id*64 + int64(idx)
	}
	return id, nil
}

func (ig *IgImpl) PostByShortcode(ctx context.Context, shortcode string) (*domain.Post, error) {
	mediaID, err := mediaIDFromShortcode(shortcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrNotFound, err)
	}

	if err := ig.Pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	}

	ig.Logger.Debug("Fetching media", "shortcode", shortcode, "media_id", mediaID)

	media, err := ig.Client.GetMedia(mediaID)
	if err != nil {
		return nil, classifyError(err)
	}
	if media == nil || len(media.Items) == 0 {
		return nil, fmt.Errorf("%w: media %s has no items", instagram.ErrNotFound, shortcode)
	}

	item := media.Items[0]

	post := &domain.Post{
		Shortcode:  shortcode,
		Username:   item.User.Username,
		Caption:    item.Caption.Text,
		Likes:      item.Likes,
		Comments:   item.CommentCount,
		IsVideo:    item.MediaType == mediaTypeVideo,
		VideoURL:   bestVideo(item.Videos),
		DisplayURL: bestImage(item.Images),
	}
	if item.TakenAt > 0 {
		post.TakenAt = time.Unix(item.TakenAt, 0).UTC()
	}

	for i, child := range item.CarouselMedia {
		post.Carousel = append(post.Carousel, domain.CarouselNode{
			Position:   i,
			IsVideo:    child.MediaType == mediaTypeVideo,
			VideoURL:   bestVideo(child.Videos),
			DisplayURL: bestImage(child.Images),
		})
	}

	return post, nil
}

package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
)

func postResolution() *domain.Resolution {
	return &domain.Resolution{
		Status:   domain.StatusSuccess,
		Kind:     domain.KindPost,
		Username: "some_user",
		Media: []domain.MediaItem{
			{URL: "https://cdn.example/a.jpg", Type: domain.MediaImage, Index: 1},
			{URL: "https://cdn.example/b.mp4", Type: domain.MediaVideo, Index: 2},
		},
		Caption:     "Höhenweg über Zermatt ❤️",
		Likes:       1234,
		Comments:    56,
		Shortcode:   "ABC123xyz",
		PostURL:     "https://www.instagram.com/p/ABC123xyz/",
		PostDate:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ExtractedAt: time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Elapsed:     1500 * time.Millisecond,
	}
}

func TestMarshalPostSuccessRoundTrips(t *testing.T) {
	out, err := Marshal(postResolution())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))

	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "post", got["type"])
	assert.Equal(t, "some_user", got["username"])
	assert.Equal(t, float64(2), got["media_count"])
	assert.Equal(t, float64(1234), got["likes"])
	assert.Equal(t, float64(56), got["comments"])
	assert.Equal(t, "ABC123xyz", got["shortcode"])
	assert.Equal(t, "2025-06-01T12:00:00Z", got["post_date_utc"])
	assert.Equal(t, float64(1500), got["processing_time_ms"])

	media, ok := got["media"].([]any)
	require.True(t, ok)
	require.Len(t, media, 2)
	first := media[0].(map[string]any)
	assert.Equal(t, "https://cdn.example/a.jpg", first["url"])
	assert.Equal(t, "image", first["type"])
	assert.Equal(t, float64(1), first["index"])
	second := media[1].(map[string]any)
	assert.Equal(t, "video", second["type"])
	assert.Equal(t, float64(2), second["index"])
}

func TestMarshalPreservesNonASCII(t *testing.T) {
	out, err := Marshal(postResolution())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "Höhenweg über Zermatt ❤️")
	assert.NotContains(t, s, `\u`)
}

func TestMarshalDoesNotEscapeURLs(t *testing.T) {
	res := postResolution()
	res.Media[0].URL = "https://cdn.example/a.jpg?x=1&y=2"
	out, err := Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(out), "x=1&y=2")
	assert.NotContains(t, string(out), `\u0026`)
}

func TestMarshalStoryWithNoItems(t *testing.T) {
	res := &domain.Resolution{
		Status:      domain.StatusSuccess,
		Kind:        domain.KindStory,
		Username:    "some_user",
		Media:       nil,
		Message:     "No active stories found for this user.",
		PostURL:     "https://www.instagram.com/stories/some_user/",
		ExtractedAt: time.Now().UTC(),
	}
	out, err := Marshal(res)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"media":[]`)
	assert.NotContains(t, s, `"media":null`)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, "story", got["type"])
	assert.Equal(t, float64(0), got["media_count"])
	assert.Equal(t, "", got["caption"], "caption must be an empty string, never null")
	assert.Equal(t, "No active stories found for this user.", got["message"])
}

func TestMarshalStoryItems(t *testing.T) {
	taken := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	res := &domain.Resolution{
		Status:   domain.StatusSuccess,
		Kind:     domain.KindStory,
		Username: "some_user",
		Media: []domain.MediaItem{
			{URL: "https://cdn.example/s1.mp4", Type: domain.MediaVideo, Index: 1, StoryItemID: "some_user_1748764800", Date: taken},
		},
		ExtractedAt: time.Now().UTC(),
	}
	out, err := Marshal(res)
	require.NoError(t, err)

	var got struct {
		Media []struct {
			URL         string `json:"url"`
			Type        string `json:"type"`
			Index       int    `json:"index"`
			StoryItemID string `json:"story_item_id"`
			DateUTC     string `json:"date_utc"`
		} `json:"media"`
	}
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got.Media, 1)
	assert.Equal(t, "video", got.Media[0].Type)
	assert.Equal(t, 1, got.Media[0].Index)
	assert.Equal(t, "some_user_1748764800", got.Media[0].StoryItemID)
	assert.Equal(t, "2025-06-01T08:00:00Z", got.Media[0].DateUTC)
}

func TestMarshalFailureCarriesOnlyStatusAndMessage(t *testing.T) {
	res := &domain.Resolution{
		Status:  domain.StatusRateLimited,
		Message: "Instagram rate limit exceeded. Try later.",
	}
	out, err := Marshal(res)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "rate_limited", got["status"])
	assert.Equal(t, "Instagram rate limit exceeded. Try later.", got["message"])
}

func TestMarshalIsSingleLine(t *testing.T) {
	out, err := Marshal(postResolution())
	require.NoError(t, err)
	assert.False(t, strings.ContainsRune(string(out), '\n'))
}

func TestUsageIsValidJSON(t *testing.T) {
	var got map[string]any
	require.NoError(t, json.Unmarshal(Usage(), &got))
	assert.Equal(t, "error", got["status"])
	assert.Contains(t, got["message"], "Usage")
}

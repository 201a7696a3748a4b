package response

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
)

// Wire schema notes:
//   - likes/comments use -1 as the "count unavailable" sentinel
//   - caption is always a string, never null
//   - media is always an array on success, never null
//   - failure payloads carry only status and message
//   - timestamps are RFC 3339 UTC

type mediaPayload struct {
	URL         string `json:"url"`
	Type        string `json:"type"`
	Index       int    `json:"index"`
	StoryItemID string `json:"story_item_id,omitempty"`
	DateUTC     string `json:"date_utc,omitempty"`
}

type postPayload struct {
	Status           string         `json:"status"`
	Type             string         `json:"type"`
	Username         string         `json:"username"`
	Media            []mediaPayload `json:"media"`
	MediaCount       int            `json:"media_count"`
	Caption          string         `json:"caption"`
	PostDateUTC      string         `json:"post_date_utc,omitempty"`
	Likes            int            `json:"likes"`
	Comments         int            `json:"comments"`
	Shortcode        string         `json:"shortcode"`
	ExtractedAtUTC   string         `json:"extracted_at_utc"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	PostURL          string         `json:"post_url"`
}

type storyPayload struct {
	Status           string         `json:"status"`
	Type             string         `json:"type"`
	Username         string         `json:"username"`
	Media            []mediaPayload `json:"media"`
	MediaCount       int            `json:"media_count"`
	Caption          string         `json:"caption"`
	Message          string         `json:"message,omitempty"`
	ExtractedAtUTC   string         `json:"extracted_at_utc"`
	ProcessingTimeMS int64          `json:"processing_time_ms"`
	PostURL          string         `json:"post_url"`
}

type failurePayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Marshal serializes a resolution to a single JSON document. HTML escaping
// is disabled so media URLs and non-ASCII captions pass through verbatim.
func Marshal(res *domain.Resolution) ([]byte, error) {
	var payload any
	switch {
	case res.Status != domain.StatusSuccess:
		payload = failurePayload{
			Status:  string(res.Status),
			Message: res.Message,
		}
	case res.Kind == domain.KindStory:
		payload = storyPayload{
			Status:           string(res.Status),
			Type:             string(res.Kind),
			Username:         res.Username,
			Media:            mediaPayloads(res.Media),
			MediaCount:       len(res.Media),
			Caption:          res.Caption,
			Message:          res.Message,
			ExtractedAtUTC:   formatUTC(res.ExtractedAt),
			ProcessingTimeMS: res.Elapsed.Milliseconds(),
			PostURL:          res.PostURL,
		}
	default:
		payload = postPayload{
			Status:           string(res.Status),
			Type:             string(res.Kind),
			Username:         res.Username,
			Media:            mediaPayloads(res.Media),
			MediaCount:       len(res.Media),
			Caption:          res.Caption,
			PostDateUTC:      formatUTC(res.PostDate),
			Likes:            res.Likes,
			Comments:         res.Comments,
			Shortcode:        res.Shortcode,
			ExtractedAtUTC:   formatUTC(res.ExtractedAt),
			ProcessingTimeMS: res.Elapsed.Milliseconds(),
			PostURL:          res.PostURL,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Usage is the document printed when the binary is invoked without an
// argument.
func Usage() []byte {
	out, _ := json.Marshal(failurePayload{
		Status:  string(domain.StatusError),
		Message: "Usage: vedinsta-resolver <instagram_url_or_username>",
	})
	return out
}

func mediaPayloads(items []domain.MediaItem) []mediaPayload {
	out := make([]mediaPayload, 0, len(items))
	for _, item := range items {
		out = append(out, mediaPayload{
			URL:         item.URL,
			Type:        string(item.Type),
			Index:       item.Index,
			StoryItemID: item.StoryItemID,
			DateUTC:     formatUTC(item.Date),
		})
	}
	return out
}

func formatUTC(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

package instagramimpl

import (
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devson1024/vedinsta-resolver/internal/instagram"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"login required token", errors.New("login_required"), instagram.ErrLoginRequired},
		{"challenge", errors.New("challenge_required: checkpoint"), instagram.ErrLoginRequired},
		{"private", errors.New("this profile is private"), instagram.ErrPrivate},
		{"rate limited", errors.New("HTTP 429: please wait a few minutes"), instagram.ErrRateLimited},
		{"not found", errors.New("media_not_found"), instagram.ErrNotFound},
		{"http 404", errors.New("invalid status code: 404 Not Found"), instagram.ErrNotFound},
		{"unavailable", errors.New("this post is unavailable"), instagram.ErrNotFound},
		{"url error", &url.Error{Op: "Get", URL: "https://i.instagram.com", Err: errors.New("dial tcp: refused")}, instagram.ErrConnection},
		{"connection token", errors.New("connection reset by peer"), instagram.ErrConnection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestClassifyErrorPassesThroughUnknown(t *testing.T) {
	unknown := errors.New("something odd happened")
	got := classifyError(unknown)
	assert.Equal(t, unknown, got)
	for _, typed := range []error{
		instagram.ErrNotFound, instagram.ErrPrivate, instagram.ErrLoginRequired,
		instagram.ErrRateLimited, instagram.ErrConnection,
	} {
		assert.NotErrorIs(t, got, typed)
	}
}

func TestMediaIDFromShortcode(t *testing.T) {
	tests := []struct {
		code string
		id   int64
	}{
		{"A", 0},
		{"B", 1},
		{"_", 63},
		{"BA", 64},
		{"CBa", 2*64*64 + 1*64 + 26},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			id, err := mediaIDFromShortcode(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestMediaIDFromShortcodeRoundTrip(t *testing.T) {
	// Encode a known ID with the same alphabet and make sure decoding
	// recovers it.
	encode := func(id int64) string {
		if id == 0 {
			return string(shortcodeAlphabet[0])
		}
		var out []byte
		for id > 0 {
			out = append([]byte{shortcodeAlphabet[id%64]}, out...)
			id /= 64
		}
		return string(out)
	}

	const mediaID = int64(2589558531353702129)
	code := encode(mediaID)
	got, err := mediaIDFromShortcode(code)
	require.NoError(t, err)
	assert.Equal(t, mediaID, got)
}

func TestMediaIDFromShortcodeRejectsBadInput(t *testing.T) {
	for _, code := range []string{"", "abc/def", "has space"} {
		_, err := mediaIDFromShortcode(code)
		assert.Error(t, err, fmt.Sprintf("code %q", code))
	}
}

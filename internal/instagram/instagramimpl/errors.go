package instagramimpl

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/devson1024/vedinsta-resolver/internal/instagram"
)

// classifyError normalizes a goinsta failure into the typed error set. The
// library reports most conditions as bare message strings, so after the
// structured checks this falls back to token matching. This is the only
// place in the repository that inspects error text; everything downstream
// classifies with errors.Is.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case hasAny(msg, "login_required", "login required", "challenge_required", "checkpoint_required", "consent_required", "not logged in"):
		return fmt.Errorf("%w: %v", instagram.ErrLoginRequired, err)
	case hasAny(msg, "private", "not authorized to view"):
		return fmt.Errorf("%w: %v", instagram.ErrPrivate, err)
	case hasAny(msg, "rate limit", "too many requests", "429", "please wait a few minutes"):
		return fmt.Errorf("%w: %v", instagram.ErrRateLimited, err)
	case hasAny(msg, "not found", "404", "unavailable", "user_not_found", "media_not_found"):
		return fmt.Errorf("%w: %v", instagram.ErrNotFound, err)
	case hasAny(msg, "connection", "timeout", "timed out", "unexpected eof", "broken pipe", "reset by peer", "no such host"):
		return fmt.Errorf("%w: %v", instagram.ErrConnection, err)
	default:
		return err
	}
}

func hasAny(s string, tokens ...string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

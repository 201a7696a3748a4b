package request

import (
	"regexp"
	"strings"
)

// Route is the path a resolve call takes after classification.
type Route int

const (
	RouteInvalid Route = iota
	RoutePost
	RouteStory
)

var (
	storyURLRe  = regexp.MustCompile(`instagram\.com/stories/([^/]+)`)
	shortcodeRe = regexp.MustCompile(`instagram\.com/(?:p|reel|reels|tv)/([A-Za-z0-9_-]+)`)
	separatorRe = regexp.MustCompile(`[/\\?&=]`)
)

// Classify routes a free-form input string. The returned token is the
// username for the story route and empty otherwise.
//
// Bare strings without an instagram.com marker and without URL separator
// characters are always treated as usernames, never rejected. That is a
// deliberate heuristic and it can misclassify malformed input.
func Classify(input string) (Route, string) {
	input = strings.TrimSpace(input)

	if m := storyURLRe.FindStringSubmatch(input); m != nil {
		return RouteStory, m[1]
	}
	if input != "" && !strings.Contains(input, "instagram.com") && !separatorRe.MatchString(input) {
		return RouteStory, input
	}
	if strings.Contains(input, "instagram.com") {
		return RoutePost, ""
	}
	return RouteInvalid, ""
}

// Shortcode extracts the post identifier from a post/reel/IGTV URL. The
// second return is false when the URL carries no recognizable identifier;
// callers must turn that into an error outcome, never proceed with an
// empty token.
func Shortcode(url string) (string, bool) {
	m := shortcodeRe.FindStringSubmatch(url)
	if m == nil {
		return "", false
	}
	return m[1], true
}

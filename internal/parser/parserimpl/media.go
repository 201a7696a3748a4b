package parserimpl

import (
	"sort"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
)

// extractPostMedia walks a fetched post and produces the ordered media
// list. Nodes without a resolvable URL are skipped with a warning; a fully
// empty result is the caller's failure to report.
func (p *ParserImpl) extractPostMedia(post *domain.Post) []domain.MediaItem {
	if post.IsVideo {
		if post.VideoURL == "" {
			p.Logger.Warn("Missing video URL for post", "shortcode", post.Shortcode)
			return nil
		}
		return []domain.MediaItem{{URL: post.VideoURL, Type: domain.MediaVideo, Index: 1}}
	}

	if len(post.Carousel) > 0 {
		nodes := make([]domain.CarouselNode, len(post.Carousel))
		copy(nodes, post.Carousel)
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Position < nodes[j].Position })

		items := make([]domain.MediaItem, 0, len(nodes))
		for _, node := range nodes {
			mediaURL := node.DisplayURL
			mediaType := domain.MediaImage
			if node.IsVideo {
				mediaURL = node.VideoURL
				mediaType = domain.MediaVideo
			}
			if mediaURL == "" {
				p.Logger.Warn("Missing URL for carousel node", "shortcode", post.Shortcode, "position", node.Position)
				continue
			}
			items = append(items, domain.MediaItem{URL: mediaURL, Type: mediaType, Index: len(items) + 1})
		}
		return items
	}

	// Single image, also the fallback when the library reports a carousel
	// with no child nodes.
	if post.DisplayURL == "" {
		p.Logger.Warn("Missing image URL for post", "shortcode", post.Shortcode)
		return nil
	}
	return []domain.MediaItem{{URL: post.DisplayURL, Type: domain.MediaImage, Index: 1}}
}

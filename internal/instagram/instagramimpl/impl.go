package instagramimpl

import (
	"github.com/Davincible/goinsta/v3"
	"go.uber.org/fx"

	"github.com/devson1024/vedinsta-resolver/internal/instagram"
	"github.com/devson1024/vedinsta-resolver/internal/ratelimit"
	"github.com/devson1024/vedinsta-resolver/pkg/config"
	"github.com/devson1024/vedinsta-resolver/pkg/logger"
)

type IgImpl struct {
	Client *goinsta.Instagram
	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer
}

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
	Pacer  ratelimit.Pacer
}

func New(opts Opts) *IgImpl {
	client := goinsta.New(opts.Config.Instagram.User, opts.Config.Instagram.Pass)

	return &IgImpl{
		Client: client,
		Config: opts.Config,
		Logger: opts.Logger,
		Pacer:  opts.Pacer,
	}
}

var _ instagram.Client = (*IgImpl)(nil)

const mediaTypeVideo = 2

// bestImage picks the widest image candidate the library offers.
func bestImage(imgs goinsta.Images) string {
	best := ""
	maxWidth := -1
	for _, c := range imgs.Versions {
		if c.Width > maxWidth {
			maxWidth = c.Width
			best = c.URL
		}
	}
	return best
}

// bestVideo picks the widest video version the library offers.
func bestVideo(videos []goinsta.Video) string {
	best := ""
	maxWidth := -1
	for _, v := range videos {
		if v.Width > maxWidth {
			maxWidth = v.Width
			best = v.URL
		}
	}
	return best
}

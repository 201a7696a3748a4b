package parserimpl

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/fx"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
	"github.com/devson1024/vedinsta-resolver/internal/parser"
	"github.com/devson1024/vedinsta-resolver/internal/request"
	"github.com/devson1024/vedinsta-resolver/internal/response"
	"github.com/devson1024/vedinsta-resolver/pkg/config"
	"github.com/devson1024/vedinsta-resolver/pkg/logger"
	"github.com/devson1024/vedinsta-resolver/pkg/retry"
)

type Opts struct {
	fx.In

	Instagram instagram.Client
	Logger    logger.Logger
	Config    *config.Config
}

type ParserImpl struct {
	Instagram instagram.Client
	Logger    logger.Logger
	Config    *config.Config

	retryCfg retry.Config
	clock    func() time.Time
	rand     *rand.Rand
}

func New(opts Opts) *ParserImpl {
	retryCfg := retry.DefaultConfig()
	if opts.Config != nil {
		rc := opts.Config.Resolver
		if rc.MaxRetries >= 0 {
			retryCfg.MaxRetries = uint64(rc.MaxRetries)
		}
		if rc.BackoffMinSeconds > 0 {
			retryCfg.MinInterval = time.Duration(rc.BackoffMinSeconds) * time.Second
		}
		if rc.BackoffMaxSeconds > 0 {
			retryCfg.MaxInterval = time.Duration(rc.BackoffMaxSeconds) * time.Second
		}
	}
	if retryCfg.MaxInterval < retryCfg.MinInterval {
		retryCfg.MaxInterval = retryCfg.MinInterval
	}

	return &ParserImpl{
		Instagram: opts.Instagram,
		Logger:    opts.Logger,
		Config:    opts.Config,
		retryCfg:  retryCfg,
		clock:     time.Now,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var _ parser.Client = (*ParserImpl)(nil)

func (p *ParserImpl) Resolve(ctx context.Context, input string) *domain.Resolution {
	started := p.clock()

	route, username := request.Classify(input)
	switch route {
	case request.RouteStory:
		return p.resolveStories(ctx, username, started)
	case request.RoutePost:
		return p.resolvePost(ctx, input, started)
	default:
		return p.failure(domain.StatusError, "Invalid input: provide an Instagram URL or username", started)
	}
}

func (p *ParserImpl) ResolveJSON(ctx context.Context, input string) string {
	res := p.Resolve(ctx, input)

	out, err := response.Marshal(res)
	if err != nil {
		p.Logger.Error("Failed to serialize resolution", "error", err)
		return `{"status":"error","message":"Failed to serialize result"}`
	}
	return string(out)
}

// fetch runs op through the shared retry policy. Terminal outcomes are
// wrapped as permanent so they return after a single attempt, without a
// backoff sleep.
func (p *ParserImpl) fetch(ctx context.Context, name string, op func() error) error {
	wrapped := func() error {
		err := op()
		if err != nil && isTerminal(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	return retry.Do(ctx, p.Logger, name, wrapped, p.retryCfg)
}

func isTerminal(err error) bool {
	return errors.Is(err, instagram.ErrNotFound) ||
		errors.Is(err, instagram.ErrPrivate) ||
		errors.Is(err, instagram.ErrLoginRequired)
}

const maxMessageLen = 100

// capMessage bounds user-visible messages so internal error text cannot
// grow the payload without limit.
func capMessage(s string) string {
	runes := []rune(s)
	if len(runes) <= maxMessageLen {
		return s
	}
	return string(runes[:maxMessageLen])
}

func (p *ParserImpl) failure(status domain.Status, message string, started time.Time) *domain.Resolution {
	res := &domain.Resolution{
		Status:  status,
		Message: capMessage(message),
	}
	p.finish(res, started)
	return res
}

func (p *ParserImpl) finish(res *domain.Resolution, started time.Time) {
	now := p.clock()
	res.ExtractedAt = now.UTC()
	res.Elapsed = now.Sub(started)
}

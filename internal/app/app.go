package app

import (
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
	"github.com/devson1024/vedinsta-resolver/internal/instagram/instagramimpl"
	"github.com/devson1024/vedinsta-resolver/internal/parser"
	"github.com/devson1024/vedinsta-resolver/internal/parser/parserimpl"
	"github.com/devson1024/vedinsta-resolver/internal/ratelimit"
	"github.com/devson1024/vedinsta-resolver/pkg/config"
	"github.com/devson1024/vedinsta-resolver/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		ratelimit.NewPacer,
	),
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		fx.Annotate(
			parserimpl.New,
			fx.As(new(parser.Client)),
		),
	),
)

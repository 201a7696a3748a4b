package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Opts struct {
	Env       string
	SentryUrl string
	// Writer defaults to os.Stderr. Stdout is reserved for the single JSON
	// result document and must never receive log output.
	Writer io.Writer
}

type Impl struct {
	sl *slog.Logger
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	var zl zerolog.Logger
	if opts.Env == "development" {
		level = slog.LevelDebug
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		zl = zerolog.New(w).With().Timestamp().Logger()
	}

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}

	if opts.SentryUrl != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         opts.SentryUrl,
			Environment: opts.Env,
		})
		if err != nil {
			zl.Warn().Err(err).Msg("Sentry init failed, continuing without it")
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	return &Impl{sl: slog.New(slogmulti.Fanout(handlers...))}
}

func (l *Impl) Debug(msg string, args ...any) { l.sl.Debug(msg, args...) }
func (l *Impl) Info(msg string, args ...any)  { l.sl.Info(msg, args...) }
func (l *Impl) Warn(msg string, args ...any)  { l.sl.Warn(msg, args...) }
func (l *Impl) Error(msg string, args ...any) { l.sl.Error(msg, args...) }

// Printf satisfies fx.Printer so DI traces share the diagnostic stream.
func (l *Impl) Printf(format string, v ...any) {
	l.sl.Debug(fmt.Sprintf(format, v...))
}

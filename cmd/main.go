package main

import (
	"context"
	"fmt"
	"os"

	"github.com/devson1024/vedinsta-resolver/internal/app"
	"github.com/devson1024/vedinsta-resolver/internal/instagram"
	"github.com/devson1024/vedinsta-resolver/internal/parser"
	"github.com/devson1024/vedinsta-resolver/internal/response"
	"github.com/devson1024/vedinsta-resolver/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println(string(response.Usage()))
		os.Exit(1)
	}

	log := logger.New(logger.Opts{
		Env:       os.Getenv("APP_ENV"),
		SentryUrl: os.Getenv("SENTRY_URL"),
	})

	var (
		igClient instagram.Client
		pClient  parser.Client
	)

	fxApp := fx.New(
		fx.Logger(log),
		app.Module,
		fx.Populate(&igClient, &pClient),
	)

	ctx := context.Background()
	if err := fxApp.Start(ctx); err != nil {
		log.Error("Failed to start application", "error", err)
		fmt.Println(`{"status":"error","message":"Failed to initialize resolver"}`)
		os.Exit(1)
	}

	// Login is best effort: public posts resolve anonymously, and the
	// resolver reports login_required on its own when a session is needed.
	if err := igClient.Login(); err != nil {
		log.Warn("Instagram login failed, continuing anonymously", "error", err)
	}

	fmt.Println(pClient.ResolveJSON(ctx, os.Args[1]))

	if err := fxApp.Stop(ctx); err != nil {
		log.Error("Failed to stop application", "error", err)
	}
}

package parser

import (
	"context"

	"github.com/devson1024/vedinsta-resolver/internal/domain"
)

type Client interface {
	// Resolve classifies the input and produces exactly one terminal
	// Resolution, never an error: every failure is folded into the
	// resolution's status.
	Resolve(ctx context.Context, input string) *domain.Resolution

	// ResolveJSON runs Resolve and serializes the result. It always returns
	// a single well-formed JSON document, even on total failure.
	ResolveJSON(ctx context.Context, input string) string
}

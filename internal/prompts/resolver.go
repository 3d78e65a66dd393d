package prompts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rs/zerolog"
)

// Store is the slice of the template store that resolution needs: the content
// of the most recently created template of a kind, or sql.ErrNoRows.
type Store interface {
	LatestContent(ctx context.Context, kind string) (string, error)
}

// Resolver picks the active template body for a task kind: the most recently
// created stored template of that kind, else the built-in default. It never
// fails; store errors degrade to the default.
type Resolver struct {
	store  Store
	logger zerolog.Logger
}

// NewResolver creates a resolver backed by the given template store
func NewResolver(store Store, logger zerolog.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve returns the template body governing the given task kind
func (r *Resolver) Resolve(ctx context.Context, kind string) string {
	content, err := r.store.LatestContent(ctx, kind)
	if err == nil && content != "" {
		return content
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.logger.Warn().Err(err).Str("kind", kind).Msg("Template lookup failed, falling back to default")
	}
	return Default(kind)
}

package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Paintersrp/polite/internal/config"
)

// ErrAliasNotFound reports a launch request naming an alias absent from
// the local store. Local aliases are authoritative: no fallback runs.
var ErrAliasNotFound = errors.New("alias not found")

// WellKnownAlias is the profile consulted in a freshly fetched remote
// mapping during dynamic resolution.
const WellKnownAlias config.Alias = 65

// DefaultRefreshInterval gates how often dynamic resolution reaches for
// the remote document.
const DefaultRefreshInterval = time.Hour

// RemoteSource fetches the shared configuration document.
type RemoteSource interface {
	Fetch(ctx context.Context) (config.Mapping, error)
}

// Resolver turns a (alias, program) launch request into exactly one
// settings pair, evaluating the local store, the time-gated remote
// document, and the fallback strategy in that order.
type Resolver struct {
	// LocalPath is the local configuration file consulted for explicit
	// aliases.
	LocalPath string
	// Remote supplies the shared document during dynamic resolution.
	Remote RemoteSource
	// Strategy answers when no recorded configuration applies.
	Strategy Strategy
	// Refresh gates the remote fetch. A read error counts as never
	// fetched rather than failing resolution.
	Refresh RefreshStore
	// RefreshInterval defaults to DefaultRefreshInterval when zero.
	RefreshInterval time.Duration

	// now is swappable in tests.
	now func() time.Time
}

// Resolve produces the single settings pair for a launch request.
// Explicit aliases resolve only through the local store; alias 0 routes
// through dynamic resolution.
func (r *Resolver) Resolve(ctx context.Context, alias config.Alias, program string) (config.Polite, error) {
	if alias != config.DynamicAlias {
		configs, err := config.LoadLocal(r.LocalPath)
		if err != nil {
			return config.Polite{}, err
		}
		cfg, ok := configs[alias]
		if !ok {
			return config.Polite{}, fmt.Errorf("%w: alias %d in %s", ErrAliasNotFound, alias, r.LocalPath)
		}
		return cfg, nil
	}
	return r.resolveDynamic(ctx, program), nil
}

// resolveDynamic never fails: every tier degrades to the strategy.
func (r *Resolver) resolveDynamic(ctx context.Context, program string) config.Polite {
	if r.stale() {
		if cfg, ok := r.fetchWellKnown(ctx); ok {
			return cfg
		}
	}
	return r.Strategy.Decide(program)
}

func (r *Resolver) stale() bool {
	interval := r.RefreshInterval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	var last time.Time
	if r.Refresh != nil {
		// A broken store must not block resolution; treat it as never
		// fetched and let the fetch tier run.
		last, _ = r.Refresh.Last()
	}
	return r.clock().Sub(last) > interval
}

func (r *Resolver) fetchWellKnown(ctx context.Context) (config.Polite, bool) {
	if r.Remote == nil {
		return config.Polite{}, false
	}
	configs, err := r.Remote.Fetch(ctx)
	if err != nil {
		return config.Polite{}, false
	}
	if r.Refresh != nil {
		// Recording the fetch is best-effort; the fetched document is
		// already in hand.
		_ = r.Refresh.Touch(r.clock())
	}
	cfg, ok := configs[WellKnownAlias]
	return cfg, ok
}

func (r *Resolver) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

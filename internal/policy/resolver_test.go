package policy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Paintersrp/polite/internal/config"
)

type stubRemote struct {
	mapping config.Mapping
	err     error
	calls   int
}

func (s *stubRemote) Fetch(ctx context.Context) (config.Mapping, error) {
	s.calls++
	return s.mapping, s.err
}

type stubStrategy struct {
	cfg   config.Polite
	calls int
}

func (s *stubStrategy) Decide(program string) config.Polite {
	s.calls++
	return s.cfg
}

type memStore struct {
	last    time.Time
	touched []time.Time
}

func (m *memStore) Last() (time.Time, error) { return m.last, nil }
func (m *memStore) Touch(t time.Time) error  { m.touched = append(m.touched, t); return nil }

func writeLocalConf(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polite.conf")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write conf: %v", err)
	}
	return path
}

func TestResolveExplicitAlias(t *testing.T) {
	path := writeLocalConf(t, "-START-\n1;5;100\n-END-\n")
	r := &Resolver{LocalPath: path}

	got, err := r.Resolve(context.Background(), 1, "./prog")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if want := (config.Polite{Niceness: 5, OOMScoreAdj: 100}); got != want {
		t.Fatalf("config mismatch: got %+v want %+v", got, want)
	}
}

func TestResolveExplicitAliasMissingIsFatal(t *testing.T) {
	path := writeLocalConf(t, "-START-\n1;5;100\n-END-\n")
	strategy := &stubStrategy{}
	r := &Resolver{LocalPath: path, Strategy: strategy}

	_, err := r.Resolve(context.Background(), 2, "./prog")
	if !errors.Is(err, ErrAliasNotFound) {
		t.Fatalf("got %v, want ErrAliasNotFound", err)
	}
	if strategy.calls != 0 {
		t.Fatalf("explicit alias must never fall back to the strategy")
	}
}

func TestResolveDynamicUsesWellKnownAlias(t *testing.T) {
	remote := &stubRemote{mapping: config.Mapping{
		WellKnownAlias: {Niceness: 10, OOMScoreAdj: 300},
	}}
	store := &memStore{}
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	r := &Resolver{
		Remote:   remote,
		Strategy: &stubStrategy{},
		Refresh:  store,
		now:      func() time.Time { return now },
	}

	got, err := r.Resolve(context.Background(), config.DynamicAlias, "./prog")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if want := (config.Polite{Niceness: 10, OOMScoreAdj: 300}); got != want {
		t.Fatalf("config mismatch: got %+v want %+v", got, want)
	}
	if len(store.touched) != 1 || !store.touched[0].Equal(now) {
		t.Fatalf("successful fetch must record the refresh time, got %v", store.touched)
	}
}

func TestResolveDynamicFallsBackWhenAliasAbsent(t *testing.T) {
	remote := &stubRemote{mapping: config.Mapping{7: {Niceness: 1, OOMScoreAdj: 1}}}
	strategy := &stubStrategy{cfg: config.Polite{Niceness: 5, OOMScoreAdj: 100}}
	r := &Resolver{Remote: remote, Strategy: strategy, Refresh: &memStore{}}

	got, err := r.Resolve(context.Background(), config.DynamicAlias, "./boinc")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != strategy.cfg {
		t.Fatalf("expected strategy decision, got %+v", got)
	}
	if strategy.calls != 1 {
		t.Fatalf("strategy calls: got %d want 1", strategy.calls)
	}
}

func TestResolveDynamicFallsBackOnFetchFailure(t *testing.T) {
	remote := &stubRemote{err: errors.New("unreachable")}
	strategy := &stubStrategy{cfg: config.Polite{OOMScoreAdj: 100}}
	store := &memStore{}
	r := &Resolver{Remote: remote, Strategy: strategy, Refresh: store}

	got, err := r.Resolve(context.Background(), config.DynamicAlias, "./prog")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != strategy.cfg {
		t.Fatalf("expected strategy decision, got %+v", got)
	}
	if len(store.touched) != 0 {
		t.Fatalf("failed fetch must not record a refresh")
	}
}

func TestResolveDynamicSkipsFetchWhenFresh(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	remote := &stubRemote{mapping: config.Mapping{WellKnownAlias: {Niceness: 10, OOMScoreAdj: 300}}}
	strategy := &stubStrategy{cfg: config.Polite{Niceness: 2, OOMScoreAdj: 50}}
	r := &Resolver{
		Remote:   remote,
		Strategy: strategy,
		Refresh:  &memStore{last: now.Add(-30 * time.Minute)},
		now:      func() time.Time { return now },
	}

	got, err := r.Resolve(context.Background(), config.DynamicAlias, "./prog")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if remote.calls != 0 {
		t.Fatalf("fresh refresh window must skip the network, fetch called %d times", remote.calls)
	}
	if got != strategy.cfg {
		t.Fatalf("expected strategy decision, got %+v", got)
	}
}

func TestResolveDynamicNilStoreMeansNeverFetched(t *testing.T) {
	remote := &stubRemote{mapping: config.Mapping{WellKnownAlias: {Niceness: 1, OOMScoreAdj: 1}}}
	r := &Resolver{Remote: remote, Strategy: &stubStrategy{}}

	if _, err := r.Resolve(context.Background(), config.DynamicAlias, "./prog"); err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if remote.calls != 1 {
		t.Fatalf("never-fetched state must attempt the remote, fetch called %d times", remote.calls)
	}
}

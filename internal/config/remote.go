package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultRemoteURL is the shared configuration document consulted
// during dynamic resolution.
const DefaultRemoteURL = "https://raw.githubusercontent.com/Paintersrp/polite/main/polite_config.csv"

const defaultFetchTimeout = 10 * time.Second

// ErrNoRemoteConfigs distinguishes "reachable but empty" from a
// transport failure: the document was fetched, but no line parsed.
var ErrNoRemoteConfigs = errors.New("no valid online configs")

// Fetcher retrieves a remote configuration document. The HTTP client is
// built once and reused across fetches.
type Fetcher struct {
	url    string
	client *http.Client
}

// NewFetcher returns a fetcher for the given document URL. A nil client
// gets a default with a request timeout.
func NewFetcher(url string, client *http.Client) *Fetcher {
	if url == "" {
		url = DefaultRemoteURL
	}
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	return &Fetcher{url: url, client: client}
}

// Fetch retrieves and parses the remote document. Unlike the local
// loader, malformed records are skipped rather than fatal; the remote
// document is aggregated best-effort. An empty result is ErrNoRemoteConfigs.
func (f *Fetcher) Fetch(ctx context.Context) (Mapping, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch error: unexpected status %s", resp.Status)
	}

	configs := make(Mapping)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if skippable(line) {
			continue
		}
		alias, cfg, err := ParseRecord(line)
		if err != nil {
			continue
		}
		configs[alias] = cfg
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read remote document: %w", err)
	}
	if len(configs) == 0 {
		return nil, ErrNoRemoteConfigs
	}
	return configs, nil
}

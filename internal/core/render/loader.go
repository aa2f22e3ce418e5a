// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// loadTimeout bounds a single fetch attempt. The lifecycle itself imposes no
// timeout; a hung load stays Loading until superseded or settled.
const loadTimeout = 10 * time.Second

// HTTPLoader implements [Loader] over HTTP(S).
//
// Scheme-qualified locators are fetched as-is, protocol-relative ones assume
// https, and root-relative ones are joined to the configured origin (the
// server-side stand-in for the browser's page origin).
type HTTPLoader struct {
	client *http.Client
	origin string
}

// NewHTTPLoader creates an HTTP loader. origin may be empty when every
// locator in play is scheme-qualified.
func NewHTTPLoader(origin string) *HTTPLoader {
	return &HTTPLoader{
		client: &http.Client{Timeout: loadTimeout},
		origin: strings.TrimRight(origin, "/"),
	}
}

var _ Loader = (*HTTPLoader)(nil)

// Load fetches the locator and reports success for any 2xx response.
// The body is drained and discarded; only loadability matters here.
func (loader *HTTPLoader) Load(ctx context.Context, locator string) error {
	url, err := loader.absolute(locator)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("loader: build request: %w", err)
	}

	response, err := loader.client.Do(request)
	if err != nil {
		return fmt.Errorf("loader: fetch %s: %w", url, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, response.Body)
		_ = response.Body.Close()
	}()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("loader: fetch %s: status %d", url, response.StatusCode)
	}
	return nil
}

// absolute resolves a locator to a fetchable URL.
func (loader *HTTPLoader) absolute(locator string) (string, error) {
	switch {
	case strings.Contains(locator, "://"):
		return locator, nil
	case strings.HasPrefix(locator, "//"):
		return "https:" + locator, nil
	case loader.origin != "":
		return loader.origin + locator, nil
	}
	return "", fmt.Errorf("loader: relative locator %q needs a configured asset origin", locator)
}

// Package extraction - fetch.go retrieves documents over HTTP.
package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ReadabilityAgent/1.0)"

// Options configures URL fetching.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // render JavaScript-heavy pages in a headless browser when plain HTTP yields too little text
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// FromURL fetches a page and extracts its main text. When opts.UseBrowser is
// set and the plain HTTP fetch extracts too little text, the page is
// re-rendered in a headless browser before extraction.
func FromURL(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	html, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	text, err := FromHTML(html)
	if err != nil {
		return "", err
	}

	if opts.UseBrowser && tooShortForContent(text) {
		rendered, err := renderWithBrowser(ctx, urlStr, opts.Timeout)
		if err != nil {
			return "", &Error{Source: urlStr, Message: "browser rendering failed", Cause: err}
		}
		return FromHTML(rendered)
	}

	return text, nil
}

func fetchHTML(ctx context.Context, urlStr string, opts *Options) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{Source: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}

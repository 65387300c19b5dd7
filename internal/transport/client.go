package transport

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultUserAgent = "publishpr"

	// snippetLimit caps how much of an undecodable body is kept for
	// diagnostics.
	snippetLimit = 512
)

// Options configures a Client. Exactly one of PAT or AccessToken must be
// set; the credential is fixed at construction and never read from the
// environment mid-call.
type Options struct {
	// OrgURL is the organization base URL, e.g. https://dev.azure.com/acme.
	OrgURL string
	// PAT is a personal access token, sent as Basic base64(":"+PAT).
	PAT string
	// AccessToken is an OAuth2 bearer token, used instead of a PAT.
	AccessToken string
	Timeout     time.Duration
	Logger      *zap.Logger
}

// Client issues authenticated JSON requests against one Azure DevOps
// organization. Every call is a fresh request: no retries, no caching.
type Client struct {
	http      *http.Client
	orgURL    string
	basicAuth string
	userAgent string
	log       *zap.Logger
}

// New validates opts and builds a Client.
func New(opts Options) (*Client, error) {
	orgURL := strings.TrimRight(strings.TrimSpace(opts.OrgURL), "/")
	if orgURL == "" {
		return nil, fmt.Errorf("organization URL is required")
	}
	parsed, err := url.Parse(orgURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid organization URL: %q", opts.OrgURL)
	}
	if opts.PAT == "" && opts.AccessToken == "" {
		return nil, fmt.Errorf("a personal access token or an access token is required")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		orgURL:    orgURL,
		userAgent: defaultUserAgent,
		log:       logger,
	}
	if opts.AccessToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: strings.TrimSpace(opts.AccessToken)})
		c.http = oauth2.NewClient(context.Background(), ts)
		c.http.Timeout = timeout
	} else {
		// Azure DevOps PAT convention: Basic with an empty user name.
		c.basicAuth = base64.StdEncoding.EncodeToString([]byte(":" + strings.TrimSpace(opts.PAT)))
		c.http = &http.Client{Timeout: timeout}
	}
	return c, nil
}

// OrgURL returns the normalized organization base URL.
func (c *Client) OrgURL() string { return c.orgURL }

// Do issues one request against pathAndQuery (relative to the organization
// URL, starting with /) and decodes the JSON response into out when out is
// non-nil. An empty 2xx body is a valid success and leaves out untouched.
func (c *Client) Do(ctx context.Context, method, pathAndQuery string, body, out any) error {
	if !strings.HasPrefix(pathAndQuery, "/") {
		pathAndQuery = "/" + pathAndQuery
	}
	fullURL := c.orgURL + pathAndQuery

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body for %s: %w", fullURL, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", fullURL, err)
	}
	if c.basicAuth != "" {
		req.Header.Set("Authorization", "Basic "+c.basicAuth)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{URL: fullURL, Err: err}
		}
		return fmt.Errorf("%s %s: %w", method, fullURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return &TimeoutError{URL: fullURL, Err: err}
		}
		return fmt.Errorf("read response from %s: %w", fullURL, err)
	}

	c.log.Debug("remote call",
		zap.String("method", method),
		zap.String("url", fullURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode, URL: fullURL}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &RemoteAPIError{StatusCode: resp.StatusCode, URL: fullURL, Body: string(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{URL: fullURL, Snippet: truncate(string(raw), snippetLimit), Err: err}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

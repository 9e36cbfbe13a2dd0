// Package preview loads the content shown in the workspace preview pane.
//
// A preview source is either an http(s) URL, a file:// URL, or a plain
// filesystem path. Relative URLs resolve against the client's BaseURL.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/treykane/cli-workspace/internal/logging"
)

var log = logging.New("preview")

const (
	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second
	// MaxBodyBytes caps how much of a response is kept.
	MaxBodyBytes = 2 * 1024 * 1024
)

// ErrEmptySource is returned when Fetch is called without a source.
var ErrEmptySource = errors.New("preview source is empty")

// Document is a fetched preview body.
type Document struct {
	Source      string
	ContentType string
	Body        string
	Markdown    bool
}

// Client fetches preview documents.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a client with a bounded HTTP timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSpace(baseURL),
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch loads source. Network sources honor ctx cancellation.
func (c *Client) Fetch(ctx context.Context, source string) (Document, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return Document{}, ErrEmptySource
	}

	target, err := c.resolve(source)
	if err != nil {
		return Document{}, err
	}

	switch target.Scheme {
	case "http", "https":
		return c.fetchHTTP(ctx, target)
	case "", "file":
		return readFile(source, target.Path)
	default:
		return Document{}, fmt.Errorf("unsupported preview scheme %q", target.Scheme)
	}
}

// IsRemote reports whether source would be fetched over HTTP.
func (c *Client) IsRemote(source string) bool {
	target, err := c.resolve(strings.TrimSpace(source))
	if err != nil {
		return false
	}
	return target.Scheme == "http" || target.Scheme == "https"
}

func (c *Client) resolve(source string) (*url.URL, error) {
	if filepath.IsAbs(source) || (!hasScheme(source) && c.BaseURL == "") {
		return &url.URL{Path: source}, nil
	}
	ref, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse preview source %q: %w", source, err)
	}
	if ref.IsAbs() || c.BaseURL == "" {
		return ref, nil
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse preview base url %q: %w", c.BaseURL, err)
	}
	return base.ResolveReference(ref), nil
}

func (c *Client) fetchHTTP(ctx context.Context, target *url.URL) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return Document{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.5")

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Document{}, fmt.Errorf("fetch %s: unexpected status %s", target, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes+1))
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", target, err)
	}
	body = truncateUTF8(body, MaxBodyBytes)

	contentType := resp.Header.Get("Content-Type")
	log.Debug("fetched preview", "url", target.String(), "status", resp.StatusCode, "bytes", len(body))
	return Document{
		Source:      target.String(),
		ContentType: contentType,
		Body:        string(body),
		Markdown:    isMarkdown(contentType, target.Path),
	}, nil
}

func readFile(source, path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read preview %s: %w", source, err)
	}
	data = truncateUTF8(data, MaxBodyBytes)
	contentType := mime.TypeByExtension(filepath.Ext(path))
	return Document{
		Source:      source,
		ContentType: contentType,
		Body:        string(data),
		Markdown:    isMarkdown(contentType, path),
	}, nil
}

// hasScheme reports whether source starts with a URL scheme such as
// "https:" or "file:".
func hasScheme(source string) bool {
	i := strings.IndexByte(source, ':')
	if i <= 0 {
		return false
	}
	for j, r := range source[:i] {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}

// truncateUTF8 cuts data to at most limit bytes without splitting a rune.
func truncateUTF8(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	n := limit
	for n > 0 && !utf8.RuneStart(data[n]) {
		n--
	}
	return data[:n]
}

func isMarkdown(contentType, path string) bool {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if mediaType == "text/markdown" || mediaType == "text/x-markdown" {
			return true
		}
	}
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

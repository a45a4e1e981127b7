// Package httpclient is the page-fetch collaborator for the scrape
// pipeline: it fetches one page body at a time with an identifying
// User-Agent and a bounded timeout, and turns every transport-level
// failure into "no content" so a bad page never aborts a sweep.
package httpclient

import (
	"io"
	"log"
	"net/http"
	"time"
)

// FetchTimeout bounds connect+read time for a single page fetch. The
// catalog server is slow but a stalled fetch must not stall the sweep.
const FetchTimeout = 10 * time.Second

// userAgent identifies the client as a regular browser; the catalog
// server rejects requests without a recognizable User-Agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// HTTPClient wraps an http.Client configured for catalog scraping.
type HTTPClient struct {
	client *http.Client
}

// NewClient creates a new HTTP client with the scrape timeout applied.
func NewClient() *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: FetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Follow up to 10 redirects
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		},
	}
}

// Do executes an HTTP request with the identifying headers set.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	c.setHeaders(req)
	return c.client.Do(req)
}

// Get is a convenience method for GET requests.
func (c *HTTPClient) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(req)
}

// PageText fetches a page body as text. It returns the empty string on
// any failure: request errors, timeouts, non-2xx statuses and unreadable
// bodies all mean "this page yields no data" and are logged as
// warnings, never propagated. Callers proceed to the next page.
func (c *HTTPClient) PageText(url string) string {
	resp, err := c.Get(url)
	if err != nil {
		log.Printf("fetch %s: %v", url, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("fetch %s: unexpected status %d", url, resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("fetch %s: read body: %v", url, err)
		return ""
	}

	return string(body)
}

// setHeaders sets the identifying request headers.
func (c *HTTPClient) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
}

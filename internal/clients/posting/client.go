package posting

import (
	"context"
	"fmt"
	"golang.org/x/time/rate"
	"io"
	"net/http"
	"net/url"
)

const userAgent = "Mozilla/5.0 (compatible; cvcraft/1.0)"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client downloads job postings so their description can be used for tailoring.
type Client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: defaultTimeout}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) Fetch(ctx context.Context, pageURL string) (Posting, error) {

	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return Posting{}, fmt.Errorf("invalid posting url %q", pageURL)
	}

	body, err := c.sendRequest(ctx, http.MethodGet, parsed.String())
	if err != nil {
		return Posting{}, err
	}

	posting, err := Parse(string(body))
	if err != nil {
		return Posting{}, err
	}
	posting.URL = parsed.String()
	return posting, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string) ([]byte, error) {

	if c.rateLimiter != nil {
		err := c.rateLimiter.Wait(ctx)
		if err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v", resp.StatusCode)
	}

	return body, nil
}

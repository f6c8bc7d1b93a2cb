package adzuna

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"jobmarket/internal/domain"
)

const (
	defaultBaseURL = "https://api.adzuna.com/v1/api"
	userAgent      = "jobmarket/1.0 (+local)"

	// maxPerPage is the upstream cap on results_per_page.
	maxPerPage     = 50
	defaultResults = 10

	// maxResults caps one search so a single request cannot fan out into
	// an arbitrary number of page fetches.
	maxResults         = 500
	maxConcurrentPages = 4
)

// Client talks to the Adzuna job-search API.
type Client struct {
	BaseURL    string
	AppID      string
	AppKey     string
	HTTPClient *http.Client
	UserAgent  string

	limiter *rate.Limiter
	logger  *zap.Logger
}

func New(appID, appKey string, logger *zap.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		AppID:   appID,
		AppKey:  appKey,
		HTTPClient: &http.Client{
			Timeout: 20 * time.Second,
		},
		UserAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(1), 2),
		logger:    logger,
	}
}

// SearchPage fetches one page of postings. Records that fail to decode are
// logged and skipped rather than failing the page.
func (c *Client) SearchPage(ctx context.Context, keyword, country string, page, perPage int) ([]domain.RawJob, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = maxPerPage
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/jobs/%s/search/%d", c.BaseURL, url.PathEscape(country), page)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("app_id", c.AppID)
	q.Set("app_key", c.AppKey)
	q.Set("what", keyword)
	q.Set("results_per_page", strconv.Itoa(perPage))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("User-Agent", c.UserAgent)

	c.logger.Debug("fetching page", zap.String("url", req.URL.Redacted()), zap.Int("page", page))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adzuna search: bad status: %s", resp.Status)
	}

	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("adzuna search: decode response: %w", err)
	}

	out := make([]domain.RawJob, 0, len(body.Results))
	for _, raw := range body.Results {
		var j domain.RawJob
		if err := json.Unmarshal(raw, &j); err != nil {
			c.logger.Warn("skipping malformed posting", zap.Error(err))
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

// Search fetches up to results postings, fanning out over pages with a
// bounded number of workers. Requests beyond maxResults are clamped. A
// failed page is logged and contributes nothing; the fetch boundary never
// surfaces an error, so a dead upstream degrades to an empty batch.
func (c *Client) Search(ctx context.Context, keyword, country string, results int) []domain.RawJob {
	if results <= 0 {
		results = defaultResults
	}
	if results > maxResults {
		results = maxResults
	}

	perPage := results
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	pages := (results + perPage - 1) / perPage

	byPage := make([][]domain.RawJob, pages)

	var g errgroup.Group
	g.SetLimit(maxConcurrentPages)
	for p := 1; p <= pages; p++ {
		g.Go(func() error {
			jobs, err := c.SearchPage(ctx, keyword, country, p, perPage)
			if err != nil {
				// best-effort: a bad page must not sink the batch
				c.logger.Warn("page fetch failed", zap.Int("page", p), zap.Error(err))
				return nil
			}
			byPage[p-1] = jobs
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.RawJob
	for _, page := range byPage {
		out = append(out, page...)
	}
	if len(out) > results {
		out = out[:results]
	}
	return out
}

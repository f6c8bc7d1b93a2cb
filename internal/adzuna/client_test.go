package adzuna

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const searchFixture = `{
  "results": [
    {
      "id": "101",
      "title": "Data Engineer",
      "company": {"display_name": "Acme Corp"},
      "location": "Remote - US",
      "salary_min": 90000,
      "salary_max": 120000,
      "description": "<p>Build pipelines with Python and SQL.</p>",
      "redirect_url": "https://example.com/101"
    },
    {
      "id": "102",
      "title": "Data Analyst",
      "company": "Initech",
      "salary_min": 0,
      "salary_max": 0,
      "description": "Dashboards.",
      "redirect_url": "https://example.com/102"
    },
    {"id": 42, "title": ["broken"]}
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := New("test-id", "test-key", zap.NewNop())
	c.BaseURL = srv.URL
	return c, srv
}

func TestSearchPage(t *testing.T) {
	var gotPath, gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	})

	jobs, err := c.SearchPage(context.Background(), "data", "us", 1, 10)
	if err != nil {
		t.Fatalf("SearchPage: %v", err)
	}
	if gotPath != "/jobs/us/search/1" {
		t.Fatalf("path = %q", gotPath)
	}
	q, _ := http.NewRequest(http.MethodGet, "/?"+gotQuery, nil)
	if got := q.URL.Query().Get("what"); got != "data" {
		t.Fatalf("what = %q", got)
	}
	if got := q.URL.Query().Get("app_id"); got != "test-id" {
		t.Fatalf("app_id = %q", got)
	}

	// the malformed third record is skipped
	if len(jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(jobs))
	}
	if jobs[0].Company.Resolve() != "Acme Corp" {
		t.Fatalf("company = %q", jobs[0].Company.Resolve())
	}
	if jobs[1].Location.Resolve() != "Unknown" {
		t.Fatalf("missing location = %q", jobs[1].Location.Resolve())
	}
}

func TestSearchPageBadStatus(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusForbidden)
	})

	if _, err := c.SearchPage(context.Background(), "data", "us", 1, 10); err == nil {
		t.Fatal("expected error on 403")
	}
}

func TestSearchSwallowsPageErrors(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	})

	jobs := c.Search(context.Background(), "data", "us", 10)
	if len(jobs) != 0 {
		t.Fatalf("got %d jobs from a dead upstream, want 0", len(jobs))
	}
}

func TestSearchClampsOutOfRangeResults(t *testing.T) {
	var requests atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	})
	c.limiter = rate.NewLimiter(rate.Inf, 0)

	jobs := c.Search(context.Background(), "data", "us", math.MaxInt)
	if len(jobs) > maxResults {
		t.Fatalf("got %d jobs, want at most %d", len(jobs), maxResults)
	}
	if want := int32(maxResults / maxPerPage); requests.Load() != want {
		t.Fatalf("made %d page requests, want %d", requests.Load(), want)
	}
}

func TestSearchTruncates(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchFixture))
	})

	jobs := c.Search(context.Background(), "data", "us", 1)
	if len(jobs) != 1 {
		t.Fatalf("got %d jobs, want 1", len(jobs))
	}
}

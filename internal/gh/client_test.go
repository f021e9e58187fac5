package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	c := NewClient(context.Background(), "test-token", testLogger())

	u, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parsing test server URL: %v", err)
	}

	c.SetBaseURL(u)

	return c
}

// repoPage writes a JSON array of n repository objects for the given page.
func repoPage(w http.ResponseWriter, page, n int) {
	repos := make([]map[string]any, 0, n)

	for i := 0; i < n; i++ {
		name := fmt.Sprintf("owner/repo-%d-%d", page, i)
		repos = append(repos, map[string]any{
			"full_name": name,
			"html_url":  "https://github.com/" + name,
			"archived":  i%7 == 0,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(repos)
}

func TestFetchAll_PaginatesUntilShortPage(t *testing.T) {
	var requests atomic.Int32

	pageSizes := map[int]int{1: 100, 2: 100, 3: 37}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		if r.URL.Path != "/user/repos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		if got := r.URL.Query().Get("per_page"); got != "100" {
			t.Errorf("per_page = %s, want 100", got)
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		repoPage(w, page, pageSizes[page])
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	repos, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if got := requests.Load(); got != 3 {
		t.Errorf("made %d requests, want 3", got)
	}

	if len(repos) != 237 {
		t.Errorf("FetchAll() returned %d repos, want 237", len(repos))
	}

	if repos[0].FullName != "owner/repo-1-0" {
		t.Errorf("first repo = %s, API order must be preserved", repos[0].FullName)
	}
}

func TestFetchAll_EmptyFirstPageStopsImmediately(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		repoPage(w, 1, 0)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	repos, err := c.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll() error = %v", err)
	}

	if got := requests.Load(); got != 1 {
		t.Errorf("made %d requests, want 1", got)
	}

	if len(repos) != 0 {
		t.Errorf("FetchAll() returned %d repos, want 0", len(repos))
	}
}

func TestFetchAll_UnauthorizedIsTyped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	repos, err := c.FetchAll(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("FetchAll() error = %v, want ErrUnauthorized", err)
	}

	if repos != nil {
		t.Errorf("FetchAll() returned %v on failure, want nil", repos)
	}
}

func TestFetchAll_ServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	_, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("FetchAll() error = nil, want error")
	}

	if errors.Is(err, ErrUnauthorized) {
		t.Errorf("server error misclassified as unauthorized: %v", err)
	}
}

func TestFetchAll_MidPaginationFailureDiscardsPages(t *testing.T) {
	var requests atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page >= 2 {
			w.WriteHeader(http.StatusBadGateway)

			return
		}

		repoPage(w, page, 100)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	repos, err := c.FetchAll(context.Background())
	if err == nil {
		t.Fatal("FetchAll() error = nil, want error")
	}

	if repos != nil {
		t.Errorf("FetchAll() returned %d accumulated repos on failure, want none", len(repos))
	}
}

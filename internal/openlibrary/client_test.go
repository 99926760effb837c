package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseSearchURL("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSearchURL, u.String())

	u, err = parseSearchURL("mirror.example.org/search.json#frag")
	require.NoError(t, err)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "mirror.example.org", u.Host)
	assert.Empty(t, u.Fragment)

	_, err = parseSearchURL("http://")
	require.Error(t, err)
}

func TestClient_SearchEncodesTitleAndSetsHeaders(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotRawQuery, gotAccept, gotUserAgent, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotRawQuery = r.URL.RawQuery
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numFound": 1, "start": 0, "docs": [{"title": "Dune", "author_name": ["Frank Herbert"], "cover_i": 11481354, "first_publish_year": 1965}]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{SearchURL: server.URL + "/search.json", UserAgent: "test-agent"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.Search(ctx, "Tom & Jerry #1?")
	require.NoError(t, err)

	assert.Equal(t, "/search.json", gotPath)
	assert.Equal(t, "Tom & Jerry #1?", gotQuery.Get("title"))
	assert.Contains(t, gotRawQuery, "title=Tom+%26+Jerry+%231%3F")
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "test-agent", gotUserAgent)

	require.Len(t, resp.Docs, 1)
	doc := resp.Docs[0]
	assert.Equal(t, "Dune", doc.Title)
	assert.Equal(t, []string{"Frank Herbert"}, doc.AuthorName)
	assert.Equal(t, CoverID("11481354"), doc.CoverID)
	assert.Equal(t, 1965, doc.FirstPublishYear)
}

func TestClient_SearchKeepsExistingQueryParameters(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{SearchURL: server.URL + "/search.json?lang=en"})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "dune")
	require.NoError(t, err)
	assert.Equal(t, "en", gotQuery.Get("lang"))
	assert.Equal(t, "dune", gotQuery.Get("title"))
}

func TestClient_SearchErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusServiceUnavailable)
			},
			wantErr: "returned status 503",
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"docs": [`))
			},
			wantErr: "decode response",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(tt.handler)
			t.Cleanup(server.Close)

			c, err := NewClient(Options{SearchURL: server.URL})
			require.NoError(t, err)

			_, err = c.Search(context.Background(), "anything")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_SearchUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	endpoint := server.URL
	server.Close()

	c, err := NewClient(Options{SearchURL: endpoint, Timeout: time.Second})
	require.NoError(t, err)

	_, err = c.Search(context.Background(), "dune")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "execute request")
}

func TestClient_SearchHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(`{"docs": []}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(Options{SearchURL: server.URL, RequestsPerSecond: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Search(ctx, "dune")
	require.Error(t, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestNilClient(t *testing.T) {
	var c *Client
	_, err := c.Search(context.Background(), "dune")
	require.Error(t, err)
}

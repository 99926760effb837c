package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRouter_Healthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rr := httptest.NewRecorder()
	NewRouter().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok\n", rr.Body.String())
}

func TestRouter_ExposesRegisteredCollectors(t *testing.T) {
	Register()
	Register() // second call must not panic on duplicate registration

	SearchesTotal.WithLabelValues("user", "succeeded").Inc()

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	NewRouter().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "bookfinder_searches_total")
}

func TestCounters_Increment(t *testing.T) {
	before := testutil.ToFloat64(UpstreamResponsesTotal.WithLabelValues("418"))
	UpstreamResponsesTotal.WithLabelValues("418").Inc()
	after := testutil.ToFloat64(UpstreamResponsesTotal.WithLabelValues("418"))
	assert.InDelta(t, 1, after-before, 0.0001)
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, zap.NewNop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok\n", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServe_InvalidAddress(t *testing.T) {
	err := Serve(context.Background(), "not-an-address", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen metrics")
}

package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeApproximateRequestSize(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/api/v1/plans", nil)
	r.Header.Set("X-Referer", "dashboard")

	size := computeApproximateRequestSize(r)

	// request line + host + headers, no body
	want := len("/api/v1/plans") + len("GET") + len("HTTP/1.1") + len("X-Referer") + len("dashboard") + len("example.com")
	assert.Equal(t, want, size)
}

func TestComputeApproximateRequestSizeIncludesBody(t *testing.T) {
	r := httptest.NewRequest("GET", "http://example.com/healthz", nil)
	base := computeApproximateRequestSize(r)

	r.ContentLength = 256
	assert.Equal(t, base+256, computeApproximateRequestSize(r))
}

func TestMillisecondsSince(t *testing.T) {
	elapsed := MillisecondsSince(time.Now().Add(-250 * time.Millisecond))
	assert.GreaterOrEqual(t, elapsed, 250.0)
	assert.Less(t, elapsed, 10_000.0)
}

func TestPrometheusHandlerServesExposition(t *testing.T) {
	assert.NotNil(t, prometheusHandler())
}

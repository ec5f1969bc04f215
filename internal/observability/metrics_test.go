package observability_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackscave/service-desk/internal/config"
	"github.com/jackscave/service-desk/internal/observability"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/api/board", "GET", 200, time.Millisecond)
		m.RecordError("/api/board", "GET", "NOT_FOUND")
		m.RecordTicketEvent("ticket.created")
		_ = m.Handler()
		_ = m.Gatherer()
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := observability.NewMetrics("sd")
	m.RecordRequest("/api/tickets", "POST", 201, 5*time.Millisecond)
	m.RecordRequest("/api/tickets", "POST", 201, 5*time.Millisecond)
	m.RecordError("/api/tickets/:id", "GET", "NOT_FOUND")

	expected := `
# HELP sd_http_requests_total HTTP requests by route, method and status.
# TYPE sd_http_requests_total counter
sd_http_requests_total{method="POST",path="/api/tickets",status="201"} 2
# HELP sd_http_errors_total HTTP error responses by route, method and error code.
# TYPE sd_http_errors_total counter
sd_http_errors_total{code="NOT_FOUND",method="GET",path="/api/tickets/:id"} 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Gatherer(), strings.NewReader(expected),
		"sd_http_requests_total", "sd_http_errors_total"))
}

func TestNewLogger(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggerConfig{Level: "DEBUG"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	logger, err = observability.NewLogger(config.LoggerConfig{Level: "nonsense"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

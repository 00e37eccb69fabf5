package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordAndExpose(t *testing.T) {
	m, err := New("jobmatch-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Shutdown(context.Background()) })

	ctx := context.Background()
	m.RecordRecommendation(ctx, StatusOK, 12*time.Millisecond)
	m.RecordRecommendation(ctx, StatusOK, 3*time.Millisecond)
	m.RecordRecommendation(ctx, StatusNotFound, time.Millisecond)

	families, err := m.Gatherer().Gather()
	require.NoError(t, err)

	var counterSeen, histogramSeen bool
	for _, f := range families {
		switch f.GetName() {
		case "jobmatch_recommendations_total":
			counterSeen = true
			var total float64
			for _, metric := range f.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
			assert.Equal(t, 3.0, total)
		case "jobmatch_recommendation_duration_milliseconds":
			histogramSeen = true
			var count uint64
			for _, metric := range f.GetMetric() {
				count += metric.GetHistogram().GetSampleCount()
			}
			assert.Equal(t, uint64(3), count)
		}
	}
	assert.True(t, counterSeen)
	assert.True(t, histogramSeen)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `jobmatch_recommendations_total{`)
	assert.Contains(t, string(body), `status="not_found"`)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRecommendation(context.Background(), StatusError, time.Second)
	assert.NoError(t, m.Shutdown(context.Background()))
}

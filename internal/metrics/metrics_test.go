// Movie Recommender - Personalized Movie Recommendation Service
// Copyright 2026 SametAydinhan
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/SametAydinhan/movie-recommender-app-sub000

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		err       error
	}{
		{name: "successful SELECT", operation: "SELECT", table: "movies"},
		{name: "successful INSERT", operation: "INSERT", table: "user_movies"},
		{name: "failed query", operation: "SELECT", table: "movies", err: errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, "connection refused"))
			RecordDBQuery(tt.operation, tt.table, 5*time.Millisecond, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table, "connection refused"))

			want := before
			if tt.err != nil {
				want++
			}
			if after != want {
				t.Errorf("error counter = %v, want %v", after, want)
			}
		})
	}
}

func TestRecordDBQuery_ErrorTruncation(t *testing.T) {
	long := "this is a very long error message that exceeds fifty characters and should be truncated"
	RecordDBQuery("SELECT", "trunc_table", time.Millisecond, errors.New(long))

	got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("SELECT", "trunc_table", long[:50]))
	if got != 1 {
		t.Errorf("truncated label counter = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies/recommendations", "200"))
	RecordAPIRequest("GET", "/api/v1/movies/recommendations", "200", 25*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies/recommendations", "200"))

	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != start+2 {
		t.Errorf("active requests = %v, want %v", got, start+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}

func TestRecordRecommendation(t *testing.T) {
	for _, outcome := range []string{OutcomeCache, OutcomeComputed, OutcomeEmpty, OutcomeError, OutcomeTimeout} {
		before := testutil.ToFloat64(RecommendationRequests.WithLabelValues(outcome))
		RecordRecommendation(outcome, 10*time.Millisecond)
		if got := testutil.ToFloat64(RecommendationRequests.WithLabelValues(outcome)); got != before+1 {
			t.Errorf("%s: requests = %v, want %v", outcome, got, before+1)
		}
	}
}

func histogramSampleCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

func TestRecordScoringPass(t *testing.T) {
	candidates := histogramSampleCount(t, RecommendationCandidates)
	results := histogramSampleCount(t, RecommendationResults)

	RecordScoringPass(120, 25)

	if got := histogramSampleCount(t, RecommendationCandidates); got != candidates+1 {
		t.Errorf("candidate samples = %d, want %d", got, candidates+1)
	}
	if got := histogramSampleCount(t, RecommendationResults); got != results+1 {
		t.Errorf("result samples = %d, want %d", got, results+1)
	}

	var m dto.Metric
	if err := RecommendationDuration.WithLabelValues(OutcomeCache).(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("write duration: %v", err)
	}
	before := m.GetHistogram().GetSampleCount()
	RecordRecommendation(OutcomeCache, 3*time.Millisecond)
	m.Reset()
	if err := RecommendationDuration.WithLabelValues(OutcomeCache).(prometheus.Histogram).Write(&m); err != nil {
		t.Fatalf("write duration: %v", err)
	}
	if got := m.GetHistogram().GetSampleCount(); got != before+1 {
		t.Errorf("duration samples = %d, want %d", got, before+1)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("memory"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("memory"))

	RecordCacheLookup("memory", true)
	RecordCacheLookup("memory", false)
	RecordCacheLookup("memory", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("memory")); got != hits+1 {
		t.Errorf("hits = %v, want %v", got, hits+1)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("memory")); got != misses+2 {
		t.Errorf("misses = %v, want %v", got, misses+2)
	}
}

func TestCircuitBreakerMetrics(t *testing.T) {
	name := "test-catalog"

	RecordCircuitBreakerResult(name, nil, false)
	RecordCircuitBreakerResult(name, errors.New("boom"), false)
	RecordCircuitBreakerResult(name, nil, true)

	for _, result := range []string{"success", "failure", "rejected"} {
		if got := testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues(name, result)); got != 1 {
			t.Errorf("%s = %v, want 1", result, got)
		}
	}

	RecordCircuitBreakerTransition(name, "closed", "open", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(name)); got != 2 {
		t.Errorf("state = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(name, "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordRecommendation(OutcomeComputed, time.Millisecond)
			RecordScoringPass(100, 25)
			RecordCacheLookup("lru", i%2 == 0)
			RecordCacheError("redis", "get")
		}()
	}
	wg.Wait()
}

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		DBQueryDuration,
		DBQueryErrors,
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		RecommendationRequests,
		RecommendationDuration,
		RecommendationCandidates,
		RecommendationResults,
		RecommendationForceRefreshThrottled,
		CacheHits,
		CacheMisses,
		CacheErrors,
		CacheEvictions,
		CircuitBreakerState,
		CircuitBreakerRequests,
		CircuitBreakerTransitions,
		AppInfo,
	}

	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

func TestMetricGathering(t *testing.T) {
	RecordDBQuery("TEST", "test_table", time.Millisecond, nil)
	RecordAPIRequest("GET", "/test", StatusLabel(200), time.Millisecond)
	SetAppInfo("test", "go1.24")

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordAPIRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordAPIRequest("GET", "/api/v1/movies/recommendations", "200", 25*time.Millisecond)
	}
}

func BenchmarkRecordRecommendation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRecommendation(OutcomeCache, time.Millisecond)
	}
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestRecordRequest(t *testing.T) {
	tests := []struct {
		name       string
		tool       string
		duration   float64
		success    bool
		wantStatus string
	}{
		{
			name:       "successful request",
			tool:       "test_tool",
			duration:   0.5,
			success:    true,
			wantStatus: "success",
		},
		{
			name:       "failed request",
			tool:       "test_tool",
			duration:   1.0,
			success:    false,
			wantStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Record the request
			RecordRequest(tt.tool, tt.duration, tt.success)

			// Verify counter was incremented
			counter, err := RequestsTotal.GetMetricWithLabelValues(tt.tool, tt.wantStatus)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}
		})
	}
}

func TestRecordAPICall(t *testing.T) {
	tests := []struct {
		name      string
		route     string
		duration  float64
		success   bool
		errorCode string
	}{
		{
			name:      "successful API call",
			route:     "works",
			duration:  0.1,
			success:   true,
			errorCode: "",
		},
		{
			name:      "failed API call with error code",
			route:     "funders",
			duration:  0.5,
			success:   false,
			errorCode: "404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			RecordAPICall(tt.route, tt.duration, tt.success, tt.errorCode)

			// Verify request counter
			status := "success"
			if !tt.success {
				status = "error"
			}
			counter, err := CrossrefAPIRequestsTotal.GetMetricWithLabelValues(tt.route, status)
			if err != nil {
				t.Fatalf("failed to get metric: %v", err)
			}

			var m dto.Metric
			if err := counter.Write(&m); err != nil {
				t.Fatalf("failed to write metric: %v", err)
			}

			if m.Counter.GetValue() < 1 {
				t.Error("expected counter to be incremented")
			}

			// Verify error counter if error code provided
			if tt.errorCode != "" {
				errCounter, err := CrossrefAPIErrors.GetMetricWithLabelValues(tt.route, tt.errorCode)
				if err != nil {
					t.Fatalf("failed to get error metric: %v", err)
				}

				var em dto.Metric
				if err := errCounter.Write(&em); err != nil {
					t.Fatalf("failed to write error metric: %v", err)
				}

				if em.Counter.GetValue() < 1 {
					t.Error("expected error counter to be incremented")
				}
			}
		})
	}
}

func TestRequestInFlight(t *testing.T) {
	gauge, err := RequestInFlight.GetMetricWithLabelValues("test_tool")
	if err != nil {
		t.Fatalf("failed to get metric: %v", err)
	}

	gauge.Inc()
	var m dto.Metric
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	inFlight := m.Gauge.GetValue()

	gauge.Dec()
	if err := gauge.Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}

	if m.Gauge.GetValue() != inFlight-1 {
		t.Errorf("expected gauge to decrement from %v, got %v", inFlight, m.Gauge.GetValue())
	}
}

func TestMetricsRegistered(t *testing.T) {
	// Verify all metrics are registered by checking they can be collected
	metrics := []prometheus.Collector{
		RequestsTotal,
		RequestDuration,
		RequestInFlight,
		CrossrefAPILatency,
		CrossrefAPIRequestsTotal,
		CrossrefAPIErrors,
		PanicsRecovered,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	}

	for i, m := range metrics {
		if m == nil {
			t.Errorf("metric at index %d is nil", i)
		}
	}
}

func TestNamespace(t *testing.T) {
	if Namespace != "crossref_mcp" {
		t.Errorf("expected namespace 'crossref_mcp', got '%s'", Namespace)
	}
}

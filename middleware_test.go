package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// mockHandler simulates handlers with different status behaviors.
func mockHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "OK")
	case http.MethodPost:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Not Found")
	case http.MethodPut:
		// No explicit WriteHeader: must still be counted as 200.
		_, _ = io.WriteString(w, "Implicit OK")
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = io.WriteString(w, "Method Not Allowed")
	}
}

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedLabels prometheus.Labels
	}{
		{
			name:           "Successful GET request",
			method:         http.MethodGet,
			path:           "/api/weather",
			expectedStatus: http.StatusOK,
			expectedLabels: prometheus.Labels{"path": "/api/weather", "method": "GET", "code": "200"},
		},
		{
			name:           "Not Found POST request",
			method:         http.MethodPost,
			path:           "/api/weather",
			expectedStatus: http.StatusNotFound,
			expectedLabels: prometheus.Labels{"path": "/api/weather", "method": "POST", "code": "404"},
		},
		{
			name:           "Implicit OK for PUT request",
			method:         http.MethodPut,
			path:           "/api/locations",
			expectedStatus: http.StatusOK,
			expectedLabels: prometheus.Labels{"path": "/api/locations", "method": "PUT", "code": "200"},
		},
		{
			name:           "Method Not Allowed DELETE request",
			method:         http.MethodDelete,
			path:           "/api/select",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedLabels: prometheus.Labels{"path": "/api/select", "method": "DELETE", "code": "405"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpRequestsTotal.Reset()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()

			handler := metricsMiddleware(http.HandlerFunc(mockHandler))
			handler.ServeHTTP(rr, req)

			if status := rr.Code; status != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v", status, tt.expectedStatus)
			}

			counter := httpRequestsTotal.With(tt.expectedLabels)
			if err := testutil.CollectAndCompare(counter, strings.NewReader(
				`# HELP skycast_http_requests_total Total number of HTTP requests by path, method and code.
				# TYPE skycast_http_requests_total counter
				skycast_http_requests_total{code="`+strconv.Itoa(tt.expectedStatus)+`",method="`+tt.method+`",path="`+tt.path+`"} 1
				`,
			), "skycast_http_requests_total"); err != nil {
				t.Errorf("unexpected metric value:\n%s", err)
			}
		})
	}
}

func TestCorsMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	dummyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := corsMiddleware(dummyHandler)
	handler.ServeHTTP(rr, req)

	if header := rr.Header().Get("Access-Control-Allow-Origin"); header != "*" {
		t.Errorf("handler returned wrong CORS header: got %q want %q", header, "*")
	}
}

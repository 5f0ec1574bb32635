package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
)

func TestURL(t *testing.T) {
	tests := []struct {
		instanceURL string
		httpPort    string
		want        string
	}{
		{"localhost:50051", "3000", "http://localhost:3000/health"},
		{"storage.example.com", "8080", "http://storage.example.com:8080/health"},
		{"localhost", "3000", "http://localhost:3000/health"},
		{"10.0.0.5:50051", "9999", "http://10.0.0.5:9999/health"},
		{"host:50051:extra", "3000", "http://host:3000/health"},
		{":50051", "3000", "http://:3000/health"},
	}

	for _, tt := range tests {
		got := URL(tt.instanceURL, tt.httpPort)
		if got != tt.want {
			t.Errorf("URL(%q, %q) = %q, want %q", tt.instanceURL, tt.httpPort, got, tt.want)
		}
	}
}

func TestCheckHealthy(t *testing.T) {
	for _, code := range []int{200, 204, 299} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/health" {
				t.Errorf("expected request to /health, got %s", r.URL.Path)
			}
			w.WriteHeader(code)
		}))

		result := Check(resty.New(), server.URL+"/health")
		server.Close()

		if result.Status != Healthy {
			t.Errorf("status %d: expected Healthy, got %v", code, result.Status)
		}
		if result.Code != code {
			t.Errorf("expected code %d, got %d", code, result.Code)
		}
		if result.Err != nil {
			t.Errorf("expected nil error, got %v", result.Err)
		}
	}
}

func TestCheckUnhealthy(t *testing.T) {
	for _, code := range []int{404, 500, 503} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		result := Check(resty.New(), server.URL+"/health")
		server.Close()

		if result.Status != Unhealthy {
			t.Errorf("status %d: expected Unhealthy, got %v", code, result.Status)
		}
		if result.Code != code {
			t.Errorf("expected code %d, got %d", code, result.Code)
		}
	}
}

func TestCheckUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/health"
	server.Close()

	result := Check(resty.New(), url)
	if result.Status != Unreachable {
		t.Fatalf("expected Unreachable, got %v", result.Status)
	}
	if result.Err == nil {
		t.Fatal("expected a transport error, got nil")
	}
}

func TestCheckWithProgressStopsIndicator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	started := false
	stopped := false
	progress := func(message string) func() {
		started = true
		if message != "probing" {
			t.Errorf("expected message %q, got %q", "probing", message)
		}
		return func() { stopped = true }
	}

	result := CheckWithProgress(resty.New(), server.URL+"/health", "probing", progress)
	if result.Status != Healthy {
		t.Errorf("expected Healthy, got %v", result.Status)
	}
	if !started || !stopped {
		t.Errorf("expected indicator started and stopped, got started=%v stopped=%v", started, stopped)
	}
}

func TestCheckWithProgressNilProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	result := CheckWithProgress(resty.New(), server.URL+"/health", "probing", nil)
	if result.Status != Healthy {
		t.Errorf("expected Healthy, got %v", result.Status)
	}
}

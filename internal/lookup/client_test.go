package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Geolocation(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		response   GeoRecord
		statusCode int
		wantErr    bool
	}{
		{
			name:  "successful response",
			token: "test-token",
			response: GeoRecord{
				IP:      "8.8.8.8",
				City:    "Mountain View",
				Region:  "California",
				Country: "US",
				Org:     "AS15169 Google LLC",
			},
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "works without a token",
			token:      "",
			response:   GeoRecord{IP: "1.1.1.1", Country: "AU"},
			statusCode: http.StatusOK,
			wantErr:    false,
		},
		{
			name:       "server error",
			token:      "test-token",
			response:   GeoRecord{},
			statusCode: http.StatusInternalServerError,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify request
				if r.Method != "GET" {
					t.Errorf("Expected GET, got %s", r.Method)
				}
				if r.URL.Path != "/8.8.8.8/json" && r.URL.Path != "/1.1.1.1/json" {
					t.Errorf("Unexpected path %s", r.URL.Path)
				}
				auth := r.Header.Get("Authorization")
				if tt.token != "" && auth != "Bearer "+tt.token {
					t.Errorf("Authorization = %q, want bearer token", auth)
				}
				if tt.token == "" && auth != "" {
					t.Errorf("Authorization = %q, want no header", auth)
				}

				w.WriteHeader(tt.statusCode)
				json.NewEncoder(w).Encode(tt.response)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{
				Token:      tt.token,
				GeoBaseURL: server.URL,
			})

			ip := tt.response.IP
			if ip == "" {
				ip = "8.8.8.8"
			}
			rec, err := client.Geolocation(context.Background(), ip)

			if (err != nil) != tt.wantErr {
				t.Errorf("Geolocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && rec.City != tt.response.City {
				t.Errorf("City = %q, want %q", rec.City, tt.response.City)
			}
		})
	}
}

func TestClient_Registration(t *testing.T) {
	rdapBody := `{
		"handle": "NET-8-8-8-0-2",
		"startAddress": "8.8.8.0",
		"endAddress": "8.8.8.255",
		"name": "GOGL",
		"type": "DIRECT ALLOCATION",
		"parentHandle": "NET-8-0-0-0-0",
		"port43": "whois.arin.net",
		"status": ["active"],
		"cidr0_cidrs": [{"v4prefix": "8.8.8.0", "length": 24}],
		"events": [
			{"eventAction": "registration", "eventDate": "2014-03-14T15:52:05-04:00"},
			{"eventAction": "last changed", "eventDate": "2023-12-28T17:24:56-05:00"}
		],
		"entities": [{
			"handle": "GOGL",
			"roles": ["registrant"],
			"vcardArray": ["vcard", [
				["version", {}, "text", "4.0"],
				["fn", {}, "text", "Google LLC"],
				["adr", {"label": "1600 Amphitheatre Parkway\nMountain View\nCA\n94043"}, "text", ["", "", "", "", "", "", ""]]
			]]
		}]
	}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/ip/8.8.8.8" {
			t.Errorf("Expected /ip/8.8.8.8, got %s", r.URL.Path)
		}
		if r.Header.Get("Accept") != "application/rdap+json" {
			t.Errorf("Accept = %q, want application/rdap+json", r.Header.Get("Accept"))
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(rdapBody))
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		RDAPBaseURL: server.URL,
	})

	rec, err := client.Registration(context.Background(), "8.8.8.8")
	if err != nil {
		t.Fatalf("Registration() error = %v", err)
	}

	if rec.StartAddress != "8.8.8.0" || rec.EndAddress != "8.8.8.255" {
		t.Errorf("Range = %s - %s, want 8.8.8.0 - 8.8.8.255", rec.StartAddress, rec.EndAddress)
	}
	if rec.CIDR != "8.8.8.0/24" {
		t.Errorf("CIDR = %q, want %q", rec.CIDR, "8.8.8.0/24")
	}
	if rec.Registrar != "arin" {
		t.Errorf("Registrar = %q, want %q", rec.Registrar, "arin")
	}
	if rec.Organization != "GOGL" {
		t.Errorf("Organization = %q, want %q", rec.Organization, "GOGL")
	}
	if rec.Registrant != "Google LLC" {
		t.Errorf("Registrant = %q, want %q", rec.Registrant, "Google LLC")
	}
	if rec.Created != "2014-03-14" {
		t.Errorf("Created = %q, want %q", rec.Created, "2014-03-14")
	}
	if rec.Updated != "2023-12-28" {
		t.Errorf("Updated = %q, want %q", rec.Updated, "2023-12-28")
	}
	if len(rec.Statuses) != 1 || rec.Statuses[0] != "active" {
		t.Errorf("Statuses = %v, want [active]", rec.Statuses)
	}
}

func TestClient_Retry(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GeoRecord{IP: "8.8.8.8", City: "Mountain View"})
	}))
	defer server.Close()

	retryConfig := RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	}

	client := NewClient(ClientConfig{
		GeoBaseURL: server.URL,
		Retry:      &retryConfig,
	})

	rec, err := client.Geolocation(context.Background(), "8.8.8.8")
	if err != nil {
		t.Fatalf("Geolocation() error = %v", err)
	}

	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	if rec.City != "Mountain View" {
		t.Errorf("City = %q, want %q", rec.City, "Mountain View")
	}
}

func TestClient_RetryExhausted(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	retryConfig := RetryConfig{
		MaxRetries:     2,
		InitialBackoff: 10 * time.Millisecond,
		MaxBackoff:     50 * time.Millisecond,
	}

	client := NewClient(ClientConfig{
		GeoBaseURL: server.URL,
		Retry:      &retryConfig,
	})

	_, err := client.Geolocation(context.Background(), "8.8.8.8")
	if err == nil {
		t.Fatal("Expected error after retry exhaustion")
	}

	// Should have tried initial + 2 retries = 3 attempts
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}

	if !errors.Is(err, ErrServiceUnavailable) {
		t.Errorf("Expected ErrServiceUnavailable, got %v", err)
	}
}

func TestClient_ErrorUnwrapping(t *testing.T) {
	tests := []struct {
		statusCode int
		sentinel   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.statusCode), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := NewClient(ClientConfig{GeoBaseURL: server.URL})

			_, err := client.Geolocation(context.Background(), "8.8.8.8")
			if err == nil {
				t.Fatal("Expected error")
			}

			var lerr *LookupError
			if !errors.As(err, &lerr) {
				t.Fatalf("Expected *LookupError, got %T", err)
			}
			if lerr.Service != "geolocation" {
				t.Errorf("Service = %q, want %q", lerr.Service, "geolocation")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Expected errors.Is(%v, %v)", err, tt.sentinel)
			}
		})
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(ClientConfig{GeoBaseURL: server.URL})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Geolocation(ctx, "8.8.8.8")
	if err == nil {
		t.Fatal("Expected error due to context cancellation")
	}
}

func TestDefaultClient(t *testing.T) {
	client := DefaultClient("test-token")
	if client == nil {
		t.Error("DefaultClient returned nil")
	}
}

func TestMockClient(t *testing.T) {
	mock := NewMockClient()

	rec, err := mock.Geolocation(context.Background(), "8.8.8.8")
	if err != nil {
		t.Errorf("Geolocation() error = %v", err)
	}
	if rec.City == "" {
		t.Error("Expected city in mock response")
	}
	if len(mock.GeolocationCalls) != 1 {
		t.Errorf("Expected 1 Geolocation call, got %d", len(mock.GeolocationCalls))
	}

	reg, err := mock.Registration(context.Background(), "8.8.8.8")
	if err != nil {
		t.Errorf("Registration() error = %v", err)
	}
	if reg.Registrar == "" {
		t.Error("Expected registrar in mock response")
	}
	if len(mock.RegistrationCalls) != 1 {
		t.Errorf("Expected 1 Registration call, got %d", len(mock.RegistrationCalls))
	}

	mock.Reset()
	if len(mock.GeolocationCalls) != 0 {
		t.Error("Expected calls to be cleared after Reset")
	}
}

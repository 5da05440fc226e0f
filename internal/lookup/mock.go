package lookup

import (
	"context"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	// GeolocationFunc is called when Geolocation is invoked.
	GeolocationFunc func(ctx context.Context, ip string) (*GeoRecord, error)

	// RegistrationFunc is called when Registration is invoked.
	RegistrationFunc func(ctx context.Context, ip string) (*RegistrationRecord, error)

	// GeolocationCalls records all calls to Geolocation.
	GeolocationCalls []string

	// RegistrationCalls records all calls to Registration.
	RegistrationCalls []string
}

// NewMockClient creates a new MockClient with default implementations.
func NewMockClient() *MockClient {
	return &MockClient{
		GeolocationFunc: func(ctx context.Context, ip string) (*GeoRecord, error) {
			return &GeoRecord{
				IP:      ip,
				City:    "Mountain View",
				Region:  "California",
				Country: "US",
				Loc:     "37.4056,-122.0775",
				Org:     "AS15169 Google LLC",
			}, nil
		},
		RegistrationFunc: func(ctx context.Context, ip string) (*RegistrationRecord, error) {
			return &RegistrationRecord{
				IP:           ip,
				StartAddress: "8.8.8.0",
				EndAddress:   "8.8.8.255",
				CIDR:         "8.8.8.0/24",
				Registrar:    "arin",
				Organization: "GOGL",
				Created:      "2014-03-14",
				Updated:      "2014-03-14",
				Statuses:     []string{"active"},
			}, nil
		},
	}
}

// Geolocation implements Client.Geolocation.
func (m *MockClient) Geolocation(ctx context.Context, ip string) (*GeoRecord, error) {
	m.GeolocationCalls = append(m.GeolocationCalls, ip)
	if m.GeolocationFunc != nil {
		return m.GeolocationFunc(ctx, ip)
	}
	return nil, nil
}

// Registration implements Client.Registration.
func (m *MockClient) Registration(ctx context.Context, ip string) (*RegistrationRecord, error) {
	m.RegistrationCalls = append(m.RegistrationCalls, ip)
	if m.RegistrationFunc != nil {
		return m.RegistrationFunc(ctx, ip)
	}
	return nil, nil
}

// Reset clears all recorded calls.
func (m *MockClient) Reset() {
	m.GeolocationCalls = nil
	m.RegistrationCalls = nil
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/catfeed/internal/middleware"
)

func TestWithSubnet(t *testing.T) {
	tests := []struct {
		name           string
		subnet         string
		realIP         string
		remoteAddr     string
		expectedStatus int
	}{
		{
			name:           "Allowed subnet",
			subnet:         "192.168.0.0/24",
			realIP:         "192.168.0.45",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Forbidden subnet",
			subnet:         "10.0.0.0/8",
			realIP:         "192.168.0.1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Prefix lookalike",
			subnet:         "192.168.1.0/24",
			realIP:         "192.168.10.1",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Remote address fallback",
			subnet:         "127.0.0.0/8",
			remoteAddr:     "127.0.0.1:5555",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Garbage header",
			subnet:         "192.168.1.0/24",
			realIP:         "not-an-ip",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Disabled",
			subnet:         "",
			realIP:         "8.8.8.8",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			mw, err := middleware.WithSubnet(tt.subnet)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}

			rr := httptest.NewRecorder()
			mw(handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, called)
		})
	}
}

func TestWithSubnet_InvalidCIDR(t *testing.T) {
	_, err := middleware.WithSubnet("192.168.0")
	assert.Error(t, err)
}

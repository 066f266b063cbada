package device

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPLocator(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes a successful response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"success","lat":6.9271,"lon":79.8612}`))
		}))
		defer srv.Close()

		loc, err := NewHTTPLocator(srv.URL).Locate(ctx)
		require.NoError(t, err)
		assert.Equal(t, 6.9271, loc.Latitude)
		assert.Equal(t, 79.8612, loc.Longitude)
	})

	t.Run("non-success status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"fail","message":"private range"}`))
		}))
		defer srv.Close()

		_, err := NewHTTPLocator(srv.URL).Locate(ctx)
		assert.Error(t, err)
	})

	t.Run("http error is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := NewHTTPLocator(srv.URL).Locate(ctx)
		assert.Error(t, err)
	})

	t.Run("unreachable endpoint is an error", func(t *testing.T) {
		_, err := NewHTTPLocator("http://127.0.0.1:1").Locate(ctx)
		assert.Error(t, err)
	})
}

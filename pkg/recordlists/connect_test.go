package recordlists

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matforge/recordlists-go/pkg/serverapi"
)

func versionHandler(majorMinor string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"version": "%s.0.0", "majorMinorVersion": "%s"}`, majorMinor, majorMinor)
	}
}

func TestConnect(t *testing.T) {
	t.Run("succeeds against a supported server", func(t *testing.T) {
		srv := httptest.NewServer(versionHandler("25.1"))
		t.Cleanup(srv.Close)

		client, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("accepts the minimum version exactly", func(t *testing.T) {
		srv := httptest.NewServer(versionHandler(MinimumServerVersion))
		t.Cleanup(srv.Close)

		_, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL})
		require.NoError(t, err)
	})

	t.Run("rejects an unsupported server release", func(t *testing.T) {
		srv := httptest.NewServer(versionHandler("12.1"))
		t.Cleanup(srv.Close)

		_, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "12.1 is not supported")
		assert.Contains(t, err.Error(), MinimumServerVersion)
	})

	t.Run("missing record lists feature is not retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(srv.Close)

		_, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL, ConnectRetries: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not offer the record lists feature")
		assert.Equal(t, 1, calls)
	})

	t.Run("bad credentials are not retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusUnauthorized)
		}))
		t.Cleanup(srv.Close)

		_, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL, ConnectRetries: 3})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not authorized")
		assert.Equal(t, 1, calls)
	})

	t.Run("transient failures are retried", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			versionHandler("25.1")(w, r)
		}))
		t.Cleanup(srv.Close)

		client, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL, ConnectRetries: 1})
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up once the retry budget is spent", func(t *testing.T) {
		var calls int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		t.Cleanup(srv.Close)

		_, err := Connect(context.Background(), &serverapi.Config{BaseURL: srv.URL, ConnectRetries: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to reach")
		assert.Equal(t, 2, calls)
	})

	t.Run("invalid configuration fails before any request", func(t *testing.T) {
		_, err := Connect(context.Background(), &serverapi.Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url is required")
	})
}

func TestVersionAtLeast(t *testing.T) {
	tests := []struct {
		have, want string
		ok         bool
	}{
		{"24.2", "24.2", true},
		{"24.1", "24.2", false},
		{"25.0", "24.2", true},
		{"24.10", "24.2", true},
		{"12.1", "24.2", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s vs %s", tt.have, tt.want), func(t *testing.T) {
			ok, err := versionAtLeast(tt.have, tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := versionAtLeast("recent", "24.2")
		require.Error(t, err)
	})
}

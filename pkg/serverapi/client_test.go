package serverapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(&Config{
		BaseURL:  srv.URL,
		APIToken: "test-token",
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewClient_Validation(t *testing.T) {
	t.Run("missing base URL", func(t *testing.T) {
		_, err := NewClient(&Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url is required")
	})

	t.Run("bad scheme", func(t *testing.T) {
		_, err := NewClient(&Config{BaseURL: "ftp://example.com"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "http or https")
	})

	t.Run("token and basic auth are exclusive", func(t *testing.T) {
		_, err := NewClient(&Config{
			BaseURL:  "https://example.com",
			APIToken: "tok",
			Username: "user",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("password requires username", func(t *testing.T) {
		_, err := NewClient(&Config{
			BaseURL:  "https://example.com",
			Password: "secret",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires a username")
	})

	t.Run("anonymous is allowed", func(t *testing.T) {
		client, err := NewClient(&Config{BaseURL: "https://example.com"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", client.BaseURL())
	})

	t.Run("trailing slash is normalized", func(t *testing.T) {
		client, err := NewClient(&Config{BaseURL: "https://example.com/"})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", client.BaseURL())
	})
}

func TestClient_Headers(t *testing.T) {
	t.Run("bearer token", func(t *testing.T) {
		var got http.Header
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Clone()
			w.Write([]byte(`{"lists": []}`))
		}))

		_, err := client.GetAllLists(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-token", got.Get("Authorization"))
		assert.Equal(t, "application/json", got.Get("Accept"))
		assert.Equal(t, "recordlists-go", got.Get("X-MatForge-Application"))
	})

	t.Run("basic auth", func(t *testing.T) {
		var user, pass string
		var ok bool
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok = r.BasicAuth()
			w.Write([]byte(`{"lists": []}`))
		}))
		t.Cleanup(srv.Close)

		client, err := NewClient(&Config{
			BaseURL:  srv.URL,
			Username: "alice",
			Password: "secret",
		})
		require.NoError(t, err)

		_, err = client.GetAllLists(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "secret", pass)
	})

	t.Run("oauth2 token source", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("Authorization")
			w.Write([]byte(`{"lists": []}`))
		}))
		t.Cleanup(srv.Close)

		client, err := NewClient(&Config{
			BaseURL:     srv.URL,
			TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "oauth-token"}),
		})
		require.NoError(t, err)

		_, err = client.GetAllLists(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer oauth-token", got)
	})

	t.Run("custom application name", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("X-MatForge-Application")
			w.Write([]byte(`{"lists": []}`))
		}))
		t.Cleanup(srv.Close)

		client, err := NewClient(&Config{
			BaseURL:         srv.URL,
			ApplicationName: "my-integration",
		})
		require.NoError(t, err)

		_, err = client.GetAllLists(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "my-integration", got)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Run("server message is surfaced", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message": "name must not be empty"}`))
		}))

		_, err := client.GetAllLists(context.Background())
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "name must not be empty", apiErr.Message)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("non-JSON body kept verbatim", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream unavailable"))
		}))

		_, err := client.GetAllLists(context.Background())
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream unavailable", apiErr.Message)
	})

	t.Run("IsNotFound", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))

		_, err := client.GetList(context.Background(), "deadbeef")
		assert.True(t, IsNotFound(err))
		assert.False(t, IsUnauthorized(err))
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))

		_, err := client.GetList(context.Background(), "deadbeef")
		assert.True(t, IsUnauthorized(err))
		assert.False(t, IsNotFound(err))
	})

	t.Run("no retry on server error", func(t *testing.T) {
		calls := 0
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.GetAllLists(context.Background())
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestClient_GetAllDatabases(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schema/databases", r.URL.Path)
		gotQuery = r.URL.Query().Get("includeInternalUse")
		json.NewEncoder(w).Encode(DatabasesInfo{Databases: []Database{
			{GUID: "e595fe23-b450-4d18-8c08-4a0f378ef095", Key: "MF_Training", Name: "Training", Status: "Ok"},
		}})
	}))

	dbs, err := client.GetAllDatabases(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "true", gotQuery)
	require.Len(t, dbs, 1)
	assert.Equal(t, "MF_Training", dbs[0].Key)

	_, err = client.GetAllDatabases(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "false", gotQuery)
}

func TestClient_SearchDatabaseRecords(t *testing.T) {
	var gotPath string
	var gotBody RecordSearchCriterion
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(RecordSearchResultsInfo{Results: []RecordSearchResult{
			{RecordHistoryGUID: gotBody.RecordHistoryGUID},
		}})
	}))

	version := 2
	results, err := client.SearchDatabaseRecords(context.Background(), "MF Training", &RecordSearchCriterion{
		TableGUID:         "cde91eae-9b02-4a31-98d4-4d9a55e9dd4c",
		RecordHistoryGUID: "47f31fd0-5e9a-40dd-9647-be7e9939961a",
		RecordVersion:     &version,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/databases/MF%20Training/records/search", gotPath)
	assert.Equal(t, "47f31fd0-5e9a-40dd-9647-be7e9939961a", gotBody.RecordHistoryGUID)
	require.NotNil(t, gotBody.RecordVersion)
	assert.Equal(t, 2, *gotBody.RecordVersion)
	require.Len(t, results, 1)
}

func TestClient_GetVersion(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schema/mi-version", r.URL.Path)
		w.Write([]byte(`{"version": "25.1.0.0", "majorMinorVersion": "25.1", "binaryCompatibilityVersion": "25.1.0.0"}`))
	}))

	info, err := client.GetVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "25.1", info.MajorMinorVersion)
	assert.Equal(t, "25.1.0.0", info.Version)
}

func TestClient_DeleteList_NoContent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteList(context.Background(), "1fa2a879-7f38-4b45-9544-8f7c8314e2cb")
	assert.NoError(t, err)
}

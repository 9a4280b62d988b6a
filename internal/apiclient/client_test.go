package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/commit-history-app/internal/auth"
	"github.com/Kamar-Folarin/commit-history-app/internal/models"
)

func setupTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *logrus.Logger) {
	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, logger
}

func TestClient_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("encodes params and decodes commits", func(t *testing.T) {
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/commit-history", r.URL.Path)
			assert.Equal(t, "octocat", r.URL.Query().Get("username"))
			assert.Equal(t, "hello-world", r.URL.Query().Get("repo"))
			assert.Empty(t, r.Header.Get("Authorization"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[{
				"id": "abc123",
				"author": {"name": "Test Author", "email": "test@example.com", "date": "2020-01-01T00:00:00Z"},
				"committer": {"name": "Test Author", "email": "test@example.com", "date": "2020-01-01T00:00:00Z"},
				"message": "Test commit",
				"url": "https://github.com/octocat/hello-world/commit/abc123",
				"comment_count": 2,
				"avatar_url": "https://avatars.example.com/u/1"
			}]`))
		})

		client, err := NewClient(server.URL+"/api/", logger, WithHTTPClient(server.Client()))
		require.NoError(t, err)

		resp, err := client.Get(ctx, "/commit-history", models.CommitQuery{Username: "octocat", Repo: "hello-world"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var commits []models.Commit
		require.NoError(t, resp.Decode(&commits))
		require.Len(t, commits, 1)
		assert.Equal(t, "abc123", commits[0].ID)
		assert.Equal(t, "Test Author", commits[0].Author.Name)
		assert.Equal(t, "test@example.com", commits[0].Author.Email)
		assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), commits[0].Author.Date)
		assert.Equal(t, 2, commits[0].CommentCount)
		assert.Equal(t, "https://avatars.example.com/u/1", commits[0].AvatarURL)
	})

	t.Run("empty params are passed through", func(t *testing.T) {
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "repo=&username=", r.URL.RawQuery)
			w.Write([]byte(`[]`))
		})

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.Get(ctx, "commit-history", models.CommitQuery{})
		require.NoError(t, err)
	})

	t.Run("attaches bearer credential", func(t *testing.T) {
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))
			w.Write([]byte(`[]`))
		})

		client, err := NewClient(server.URL, logger, WithCredential(auth.ParseCookieValue(`{"token":"abc123"}`)))
		require.NoError(t, err)

		_, err = client.Get(ctx, "/commit-history", nil)
		require.NoError(t, err)
	})

	t.Run("non-2xx response becomes ResponseError", func(t *testing.T) {
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"repository not found","code":"NOT_FOUND"}`))
		})

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.Get(ctx, "/commit-history", nil)
		require.Error(t, err)

		respErr, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, respErr.StatusCode)
		assert.Equal(t, "repository not found", respErr.Message)
		assert.Equal(t, "NOT_FOUND", respErr.Code)
		assert.JSONEq(t, `{"message":"repository not found","code":"NOT_FOUND"}`, string(respErr.Data))
	})

	t.Run("server error is not retried", func(t *testing.T) {
		attempts := 0
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})

		client, err := NewClient(server.URL, logger)
		require.NoError(t, err)

		_, err = client.Get(ctx, "/commit-history", nil)
		require.Error(t, err)
		assert.Equal(t, 1, attempts)

		respErr, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "boom", respErr.Message)
	})

	t.Run("transport error", func(t *testing.T) {
		server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
		url := server.URL
		server.Close()

		client, err := NewClient(url, logger)
		require.NoError(t, err)

		_, err = client.Get(ctx, "/commit-history", nil)
		require.Error(t, err)

		respErr, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, 0, respErr.StatusCode)
		assert.NotNil(t, respErr.Unwrap())
	})
}

func TestClient_Post(t *testing.T) {
	server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req models.SignupRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, models.SignupRequest{Email: "jane@example.com", Password: "s3cret"}, req)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"abc123"}`))
	})

	client, err := NewClient(server.URL, logger)
	require.NoError(t, err)

	resp, err := client.Post(context.Background(), "/users", models.SignupRequest{Email: "jane@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"token":"abc123"}`, string(resp.Data))
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	logger := logrus.New()
	_, err := NewClient("not a url", logger)
	assert.Error(t, err)

	_, err = NewFactory("/relative", logger)
	assert.Error(t, err)
}

func TestFactory_ForCredential(t *testing.T) {
	server, logger := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.Header.Get("Authorization")))
	})

	factory, err := NewFactory(server.URL, logger, WithTimeout(time.Second))
	require.NoError(t, err)

	resp, err := factory.ForCredential(auth.Credential{Token: "first"}).Get(context.Background(), "/whoami", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer first", string(resp.Data))

	resp, err = factory.ForCredential(auth.Credential{}).Get(context.Background(), "/whoami", nil)
	require.NoError(t, err)
	assert.Empty(t, string(resp.Data))
}

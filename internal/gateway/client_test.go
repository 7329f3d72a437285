package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
)

type memCredentials struct {
	mu      sync.Mutex
	access  string
	refresh string
	cleared bool
	stored  []string
}

func (m *memCredentials) AccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, nil
}

func (m *memCredentials) RefreshToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memCredentials) StoreAccessToken(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access = token
	m.stored = append(m.stored, token)
	return nil
}

func (m *memCredentials) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cleared = true
	m.access = ""
	m.refresh = ""
	return nil
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second, zap.NewNop(), nil), server
}

func TestSessionAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`)) //nolint:errcheck
	}))

	creds := &memCredentials{access: "tok-1"}
	_, err := client.Session(creds).ListProfessors(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestSessionRefreshesOnceAndReplays(t *testing.T) {
	var listCalls, refreshCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/professors/", func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]map[string]interface{}{{"id": 1, "first_name": "Juan"}}) //nolint:errcheck
	})
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls++
		json.NewEncoder(w).Encode(map[string]string{"access": "fresh"}) //nolint:errcheck
	})

	client, _ := newTestClient(t, mux)
	creds := &memCredentials{access: "stale", refresh: "refresh-1"}

	professors, err := client.Session(creds).ListProfessors(context.Background())

	require.NoError(t, err)
	require.Len(t, professors, 1)
	assert.Equal(t, 2, listCalls)
	assert.Equal(t, 1, refreshCalls)
	assert.Equal(t, "fresh", creds.access)
	assert.Equal(t, []string{"fresh"}, creds.stored)
	assert.False(t, creds.cleared)
}

func TestSessionSecondUnauthorizedForcesLogout(t *testing.T) {
	var listCalls int
	mux := http.NewServeMux()
	mux.HandleFunc("/professors/", func(w http.ResponseWriter, r *http.Request) {
		listCalls++
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "still-bad"}) //nolint:errcheck
	})

	client, _ := newTestClient(t, mux)
	creds := &memCredentials{access: "stale", refresh: "refresh-1"}

	_, err := client.Session(creds).ListProfessors(context.Background())

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSessionExpired.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 2, listCalls)
	assert.True(t, creds.cleared)
}

func TestSessionFailedRefreshClearsCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/professors/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/auth/refresh/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, _ := newTestClient(t, mux)
	creds := &memCredentials{access: "stale", refresh: "refresh-1"}

	_, err := client.Session(creds).ListProfessors(context.Background())

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrSessionExpired.Code, appErrors.FromError(err).Code)
	assert.True(t, creds.cleared)
}

func TestRefreshPreservesRotatingRefreshToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"access": "a2"}) //nolint:errcheck
	}))

	pair, err := client.Refresh(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "a2", pair.Access)
	assert.Equal(t, "r1", pair.Refresh)
}

func TestUpstreamErrorMapping(t *testing.T) {
	cases := []struct {
		status int
		code   string
	}{
		{http.StatusBadRequest, appErrors.ErrValidation.Code},
		{http.StatusForbidden, appErrors.ErrForbidden.Code},
		{http.StatusNotFound, appErrors.ErrNotFound.Code},
		{http.StatusConflict, appErrors.ErrConflict.Code},
		{http.StatusInternalServerError, appErrors.ErrUpstream.Code},
	}

	for _, tc := range cases {
		status := tc.status
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"detail":"boom"}`)) //nolint:errcheck
		}))

		_, err := client.Session(nil).ListProfessors(context.Background())
		require.Error(t, err)
		assert.Equal(t, tc.code, appErrors.FromError(err).Code, "status %d", tc.status)
	}
}

func TestLoginDecodesAuthResponse(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login/", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"access":  "a1",
			"refresh": "r1",
			"user": map[string]interface{}{
				"id": 7, "email": "ana@uci.cu", "first_name": "Ana", "last_name": "Pérez", "role": "JEFE_DISCIPLINA",
			},
		})
	}))

	auth, err := client.Login(context.Background(), "ana@uci.cu", "secreto")

	require.NoError(t, err)
	assert.Equal(t, "a1", auth.Access)
	identity := auth.User.Identity()
	assert.Equal(t, "Ana Pérez", identity.FullName)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

const testToken = "test.jwt.token"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, token string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, Token: token}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice@example.com", creds.Email)
		assert.Equal(t, "pw", creds.Password)

		writeJSON(t, w, http.StatusOK, models.RegisterResponse{ID: "u1", Email: creds.Email, Token: testToken})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Register(context.Background(), models.Credentials{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, testToken, a.Token())
}

func TestRegister_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid data provided"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Register(context.Background(), models.Credentials{})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid data provided")
	assert.Empty(t, a.Token())
}

func TestLogin_TokenFromBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{Token: testToken})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, testToken, token)
	assert.Equal(t, testToken, a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer "+testToken)
		writeJSON(t, w, http.StatusOK, map[string]string{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, testToken, token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid login credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "bad"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid login credentials")
}

// ── Authenticated calls ─────────────────────────────────────────────────────

func TestAuthenticatedCalls_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", "")
	ctx := context.Background()

	_, err := a.Me(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.ListItems(ctx, models.ItemFilter{})
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.CreateItem(ctx, models.CreateItemRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrNoToken)
	_, err = a.UpdateItem(ctx, "id", models.ItemUpdate{})
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, a.DeleteItem(ctx, "id"), ErrNoToken)
}

func TestMe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, http.StatusOK, models.UserResponse{ID: "u1", Email: "alice@example.com"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, testToken).Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestMe_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, testToken).Me(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestListItems_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		requireBearer(t, r)

		q := r.URL.Query()
		assert.Equal(t, "work", q.Get("category"))
		assert.Equal(t, "milk", q.Get("search"))
		assert.Equal(t, "priority", q.Get("sort"))
		assert.False(t, q.Has("priority"), "empty fields are not sent")

		writeJSON(t, w, http.StatusOK, []models.Item{{ID: "i1", Name: "Buy milk"}})
	}))
	defer srv.Close()

	items, err := newTestAdapter(t, srv.URL, testToken).ListItems(context.Background(), models.ItemFilter{
		Category: models.CategoryWork,
		Search:   "milk",
		Sort:     models.SortPriority,
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Buy milk", items[0].Name)
}

func TestListItems_InvalidSort(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid sort"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, testToken).ListItems(context.Background(), models.ItemFilter{Sort: "sideways"})

	require.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "invalid sort")
}

func TestCreateItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		requireBearer(t, r)

		var req models.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Write report", req.Name)

		writeJSON(t, w, http.StatusOK, models.Item{ID: "i1", Name: req.Name, Priority: models.PriorityHigh})
	}))
	defer srv.Close()

	item, err := newTestAdapter(t, srv.URL, testToken).CreateItem(context.Background(),
		models.CreateItemRequest{Name: "Write report", Priority: models.PriorityHigh})

	require.NoError(t, err)
	assert.Equal(t, "i1", item.ID)
}

func TestUpdateItem_PathAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/items/i1", r.URL.Path)
		requireBearer(t, r)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"done":true}`, string(body))

		writeJSON(t, w, http.StatusOK, models.Item{ID: "i1", Done: true})
	}))
	defer srv.Close()

	done := true
	item, err := newTestAdapter(t, srv.URL, testToken).UpdateItem(context.Background(), "i1", models.ItemUpdate{Done: &done})

	require.NoError(t, err)
	assert.True(t, item.Done)
}

func TestUpdateItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "item not found"})
	}))
	defer srv.Close()

	name := "x"
	_, err := newTestAdapter(t, srv.URL, testToken).UpdateItem(context.Background(), "missing", models.ItemUpdate{Name: &name})

	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/items/i1", r.URL.Path)
		requireBearer(t, r)
		writeJSON(t, w, http.StatusOK, models.DeleteResponse{OK: true})
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL, testToken).DeleteItem(context.Background(), "i1"))
}

// ── Health / Version ────────────────────────────────────────────────────────

func TestHealth_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusServiceUnavailable, models.HealthResponse{OK: false, DB: false})
	}))
	defer srv.Close()

	health, err := newTestAdapter(t, srv.URL, "").Health(context.Background())

	require.ErrorIs(t, err, ErrServiceUnavailable)
	assert.False(t, health.OK)
}

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	v, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", v)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InitialToken(t *testing.T) {
	a := newTestAdapter(t, "localhost:4001", "  "+testToken+" ")
	assert.Equal(t, testToken, a.Token())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"host and port", "localhost:4001", "http://localhost:4001", false},
		{"full url trailing slash", "https://api.example.com/", "https://api.example.com", false},
		{"whitespace", "  http://localhost:4001  ", "http://localhost:4001", false},
		{"empty", "", "", true},
		{"scheme only", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

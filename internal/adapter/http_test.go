// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(Config{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, crypto.NewKeyService(), logger.Nop())
	require.NoError(t, err)
	return a
}

func newKey(t *testing.T) crypto.KeyInfo {
	t.Helper()
	key, err := crypto.NewKeyService().GenerateKeyInfo()
	require.NoError(t, err)
	return key
}

func decodeEnvelope(t *testing.T, r *http.Request) models.RestRequest {
	t.Helper()
	var req models.RestRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestRegisterUser_SendsSignedEnvelope(t *testing.T) {
	key := newKey(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/d/register-user", r.URL.Path)

		req := decodeEnvelope(t, r)
		assert.Equal(t, ProtocolVersion, req.Version)

		ok, err := crypto.NewKeyService().Verify(req.Details, key.PublicKeyPEM, req.Signature)
		assert.NoError(t, err)
		assert.True(t, ok)

		var details models.RegisterUserDetails
		assert.NoError(t, json.Unmarshal([]byte(req.Details), &details))
		assert.Equal(t, key.Address, details.Address)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"serverVersion":1,"sessionId":"s-1","id":"u-1","admin":false}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).RegisterUser(context.Background(), models.RegisterUserDetails{
		Signable:  models.Signable{Address: key.Address, Timestamp: time.Now().UnixMilli()},
		PublicKey: key.PublicKeyPEM,
	}, key.PrivateKeyPEM)

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "s-1", got.SessionID)
	assert.Equal(t, 1, got.ServerVersion)
}

func TestRegisterUser_BadPrivateKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).RegisterUser(context.Background(), models.RegisterUserDetails{}, "not a key")
	assert.Error(t, err)
}

func TestErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "address reused", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
	}

	key := newKey(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(tt.status), tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).DeleteUser(context.Background(), models.DeleteUserDetails{
				Signable: models.Signable{Address: key.Address, Timestamp: time.Now().UnixMilli()},
				UserID:   "u-9",
			}, key.PrivateKeyPEM)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrorStatuses_Unmapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Ping(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"product":"p","status":"OK","version":1,"deployed":"2026-01-01T00:00:00Z","server":"s-1"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OK", got.Status)
	assert.Equal(t, "s-1", got.Server)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://copper.example/ ", want: "https://copper.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
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

package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "registration response",
			data:     models.RegisterUserResponse{RestResponse: models.RestResponse{ServerVersion: 1}, SessionID: "s-1", ID: "u-1"},
			status:   http.StatusOK,
			wantBody: `{"serverVersion":1,"sessionId":"s-1","id":"u-1","admin":false}`,
		},
		{
			name:     "custom status",
			data:     map[string]string{"error": "not found"},
			status:   http.StatusNotFound,
			wantBody: `{"error":"not found"}`,
		},
		{
			name:     "nil",
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_KeepsCacheControl(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Cache-Control", "no-cache")

	_, err := WriteJSON(w, struct{}{}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

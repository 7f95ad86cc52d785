// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-copper-beam/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestClientInfoCtxKey(t *testing.T) {
	if ClientInfoCtxKey.String() != "clientInfo" {
		t.Errorf("expected 'clientInfo', got '%s'", ClientInfoCtxKey.String())
	}
}

func TestGetClientInfoFromContext_Success(t *testing.T) {
	want := models.ClientInfo{IPAddress: "84.208.0.1", UserAgent: "curl/8.0"}
	ctx := WithClientInfo(context.Background(), want)

	got, ok := GetClientInfoFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetClientInfoFromContext_Missing(t *testing.T) {
	got, ok := GetClientInfoFromContext(context.Background())

	if ok {
		t.Error("expected ok=false for empty context")
	}
	if got != (models.ClientInfo{}) {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestGetClientInfoFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ClientInfoCtxKey, "84.208.0.1")

	_, ok := GetClientInfoFromContext(ctx)

	if ok {
		t.Error("expected ok=false when value has unexpected type")
	}
}

func TestGetClientInfoFromContext_PlainStringKeyDoesNotCollide(t *testing.T) {
	ctx := context.WithValue(context.Background(), "clientInfo", models.ClientInfo{IPAddress: "10.0.0.1"})

	_, ok := GetClientInfoFromContext(ctx)

	if ok {
		t.Error("expected plain string key not to match the typed key")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-post-keeper/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserCtxKey(t *testing.T) {
	if UserCtxKey.String() != "user" {
		t.Errorf("expected 'user', got '%s'", UserCtxKey.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	want := models.User{UserID: "u-1", Name: "Ann", Email: "ann@example.com"}
	ctx := WithUser(context.Background(), want)

	got, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	got, ok := GetUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got.UserID != "" {
		t.Errorf("expected empty user, got %+v", got)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "u-1")

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetUserFromContext_EmptyID(t *testing.T) {
	ctx := WithUser(context.Background(), models.User{Name: "nobody"})

	if _, ok := GetUserFromContext(ctx); ok {
		t.Fatal("expected ok=false for user without id, got true")
	}
}

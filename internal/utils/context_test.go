// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestResolutionIDCtxKey(t *testing.T) {
	if ResolutionIDCtxKey.String() != "resolutionID" {
		t.Errorf("expected 'resolutionID', got '%s'", ResolutionIDCtxKey.String())
	}
}

func TestGetResolutionIDFromContext_Success(t *testing.T) {
	ctx := WithResolutionID(context.Background(), "abc")

	id, ok := GetResolutionIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if id != "abc" {
		t.Errorf("expected 'abc', got '%s'", id)
	}
}

func TestGetResolutionIDFromContext_Missing(t *testing.T) {
	_, ok := GetResolutionIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetResolutionIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ResolutionIDCtxKey, 42)

	_, ok := GetResolutionIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first, second := g.Generate(), g.Generate()
	if first == second {
		t.Fatal("expected distinct identifiers")
	}

	id, err := uuid.Parse(first)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", first, err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}

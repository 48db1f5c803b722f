// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "testKey", key.String())
}

func TestFormHandleIDCtxKey(t *testing.T) {
	assert.Equal(t, "formHandleID", FormHandleIDCtxKey.String())
}

func TestGetFormHandleIDFromContext_Success(t *testing.T) {
	id := uuid.New()
	ctx := WithFormHandleID(context.Background(), id)

	got, ok := GetFormHandleIDFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGetFormHandleIDFromContext_Missing(t *testing.T) {
	got, ok := GetFormHandleIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, got)
}

func TestGetFormHandleIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), FormHandleIDCtxKey, "not-a-uuid")

	_, ok := GetFormHandleIDFromContext(ctx)

	assert.False(t, ok)
}

func TestGetFormHandleIDFromContext_Nil(t *testing.T) {
	ctx := WithFormHandleID(context.Background(), uuid.Nil)

	_, ok := GetFormHandleIDFromContext(ctx)

	assert.False(t, ok)
}

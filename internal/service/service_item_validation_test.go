// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-keeper/internal/mock"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

func newValidatedItemSvc(ctrl *gomock.Controller) (ItemService, *mock.MockItemService) {
	inner := mock.NewMockItemService(ctrl)
	return NewItemValidationService().Wrap(inner), inner
}

func TestItemValidationService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedItemSvc(ctrl)
	ctx := context.Background()

	ok := models.ItemFilter{OwnerID: testOwnerID, Sort: models.SortNameAsc}
	inner.EXPECT().ListItems(ctx, ok).Return([]models.Item{{ID: testItemID}}, nil)

	items, err := svc.ListItems(ctx, ok)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListItems(ctx, models.ItemFilter{OwnerID: testOwnerID, Sort: "newest"})
	assert.ErrorIs(t, err, validators.ErrInvalidSort)
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestItemValidationService_ListItems_UnknownCategoryPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedItemSvc(ctrl)
	ctx := context.Background()

	filter := models.ItemFilter{OwnerID: testOwnerID, Category: "hobby", Priority: "urgent"}
	inner.EXPECT().ListItems(ctx, filter).Return([]models.Item{}, nil)

	items, err := svc.ListItems(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestItemValidationService_CreateItem(t *testing.T) {
	tests := []struct {
		name    string
		owner   string
		req     models.CreateItemRequest
		wantErr error
	}{
		{"valid", testOwnerID, models.CreateItemRequest{Name: "Task"}, nil},
		{"100 chars", testOwnerID, models.CreateItemRequest{Name: strings.Repeat("x", 100)}, nil},
		{"empty name", testOwnerID, models.CreateItemRequest{Name: ""}, validators.ErrInvalidName},
		{"101 chars", testOwnerID, models.CreateItemRequest{Name: strings.Repeat("x", 101)}, validators.ErrInvalidName},
		{"bad category", testOwnerID, models.CreateItemRequest{Name: "Task", Category: "fun"}, validators.ErrInvalidCategory},
		{"no owner", "", models.CreateItemRequest{Name: "Task"}, validators.ErrInvalidOwnerID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, inner := newValidatedItemSvc(ctrl)

			if tt.wantErr == nil {
				inner.EXPECT().CreateItem(gomock.Any(), tt.owner, tt.req).Return(models.Item{ID: testItemID}, nil)
			}

			_, err := svc.CreateItem(context.Background(), tt.owner, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidationService_UpdateItem(t *testing.T) {
	tests := []struct {
		name    string
		update  models.ItemUpdate
		wantErr error
	}{
		{"done only", models.ItemUpdate{ID: testItemID, OwnerID: testOwnerID, Done: ptr(true)}, nil},
		{"empty update", models.ItemUpdate{ID: testItemID, OwnerID: testOwnerID}, validators.ErrNoFieldsToUpdate},
		{"malformed id", models.ItemUpdate{ID: "7", OwnerID: testOwnerID, Done: ptr(true)}, validators.ErrInvalidItemID},
		{"bad priority", models.ItemUpdate{ID: testItemID, OwnerID: testOwnerID, Priority: ptr(models.Priority("asap"))}, validators.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, inner := newValidatedItemSvc(ctrl)

			if tt.wantErr == nil {
				inner.EXPECT().UpdateItem(gomock.Any(), tt.update).Return(models.Item{ID: testItemID}, nil)
			}

			_, err := svc.UpdateItem(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidationService_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedItemSvc(ctrl)
	ctx := context.Background()

	inner.EXPECT().DeleteItem(ctx, testOwnerID, testItemID).Return(nil)

	assert.NoError(t, svc.DeleteItem(ctx, testOwnerID, testItemID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, "", testItemID), validators.ErrInvalidOwnerID)
}

func TestItemValidationService_DeleteItem_MalformedIDIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newValidatedItemSvc(ctrl)

	// no DeleteItem call is expected on the wrapped service
	assert.NoError(t, svc.DeleteItem(context.Background(), testOwnerID, "not-a-uuid"))
}

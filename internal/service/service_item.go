// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

type itemService struct {
	itemRepository store.ItemRepository
	idGenerator    IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewItemService(itemRepository store.ItemRepository, idGenerator IDGenerator, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		idGenerator:    idGenerator,
		now:            time.Now,
		logger:         logger,
	}
}

// ListItems returns the owner's items, newest first unless filter.Sort says
// otherwise.
func (s *itemService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if filter.Sort == "" {
		filter.Sort = models.SortCreatedDesc
	}
	filter.Search = strings.TrimSpace(filter.Search)

	items, err := s.itemRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing items: %w", err)
	}

	return items, nil
}

// CreateItem stores a new item for ownerID. Missing category and priority
// fall back to models.DefaultCategory and models.DefaultPriority.
func (s *itemService) CreateItem(ctx context.Context, ownerID string, request models.CreateItemRequest) (models.Item, error) {
	now := s.now().UTC()

	item := models.Item{
		ID:          s.idGenerator.Generate(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(request.Name),
		Description: request.Description,
		Category:    request.Category,
		Priority:    request.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if item.Category == "" {
		item.Category = models.DefaultCategory
	}
	if item.Priority == "" {
		item.Priority = models.DefaultPriority
	}

	created, err := s.itemRepository.Create(ctx, item)
	if err != nil {
		return models.Item{}, fmt.Errorf("error creating item: %w", err)
	}

	logger.FromContext(ctx).Debug().Str("item_id", created.ID).Msg("item created")

	return created, nil
}

// UpdateItem applies the non-nil fields of update. Concurrent updates are
// last-write-wins.
func (s *itemService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		update.Name = &trimmed
	}
	update.UpdatedAt = s.now().UTC()

	updated, err := s.itemRepository.Update(ctx, update)
	if err != nil {
		return models.Item{}, fmt.Errorf("error updating item: %w", err)
	}

	return updated, nil
}

// DeleteItem removes the item if ownerID owns it. Deleting an item that
// does not exist is not an error.
func (s *itemService) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	if err := s.itemRepository.Delete(ctx, ownerID, itemID); err != nil {
		return fmt.Errorf("error deleting item: %w", err)
	}

	return nil
}

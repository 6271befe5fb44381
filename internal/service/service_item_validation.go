package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) ListItems(ctx context.Context, filter models.ItemFilter) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("error during list filter validation: %w", err)
	}

	return v.inner.ListItems(ctx, filter)
}

func (v *ItemValidationService) CreateItem(ctx context.Context, ownerID string, request models.CreateItemRequest) (models.Item, error) {
	if err := v.validator.Validate(ctx, models.Item{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Item{}, fmt.Errorf("error during item validation before saving: %w", err)
	}

	return v.inner.CreateItem(ctx, ownerID, request)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("error during item update validation: %w", err)
	}

	return v.inner.UpdateItem(ctx, update)
}

// DeleteItem treats an id that is not a UUID as a delete of zero rows: no such
// item can exist, and deleting a missing item is not an error.
func (v *ItemValidationService) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	item := models.Item{ID: itemID, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, item, validators.FieldOwnerID); err != nil {
		return fmt.Errorf("error during item delete validation: %w", err)
	}
	if err := v.validator.Validate(ctx, item, validators.FieldID); err != nil {
		return nil
	}

	return v.inner.DeleteItem(ctx, ownerID, itemID)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}

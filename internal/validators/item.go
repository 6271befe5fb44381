package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the item identifier, which must be a UUID.
	FieldID = "id"

	// FieldOwnerID targets the owner of an item or a list query.
	FieldOwnerID = "owner_id"

	// FieldName targets the item title.
	FieldName = "name"

	FieldCategory = "category"
	FieldPriority = "priority"

	// FieldSort targets the ordering of a list query.
	FieldSort = "sort"

	// FieldUpdateFields requires at least one mutable field in an update.
	FieldUpdateFields = "update_fields"
)

// MaxNameLength is the longest accepted item name, counted in runes.
const MaxNameLength = 100

var allowedCategories = []models.Category{
	models.CategoryPersonal,
	models.CategoryWork,
	models.CategoryShopping,
	models.CategoryHealth,
	models.CategoryOther,
}

var allowedPriorities = []models.Priority{
	models.PriorityLow,
	models.PriorityMedium,
	models.PriorityHigh,
}

var allowedSorts = []models.SortOrder{
	models.SortCreatedDesc,
	models.SortCreatedAsc,
	models.SortNameAsc,
	models.SortNameDesc,
	models.SortPriority,
}

// ItemValidator implements Validator for the item models: Item,
// CreateItemRequest, ItemUpdate and ItemFilter. Value and pointer forms are
// both accepted.
type ItemValidator struct {
}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate dispatches on the dynamic type of obj. Optional fields restrict
// validation to the named subset; when omitted a default set per type is
// checked. Returns ErrUnsupportedType for any other type.
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Item:
		return v.validateItem(ctx, value, fields...)
	case *models.Item:
		return v.validateItem(ctx, *value, fields...)

	case models.CreateItemRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateItemRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(ctx, value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(ctx, *value, fields...)

	case models.ItemFilter:
		return v.validateItemFilter(ctx, value, fields...)
	case *models.ItemFilter:
		return v.validateItemFilter(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsValidName reports whether name has 1 to MaxNameLength runes after
// trimming surrounding whitespace.
func IsValidName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= 1 && n <= MaxNameLength
}

func isValidCategory(c models.Category) bool {
	for _, allowed := range allowedCategories {
		if c == allowed {
			return true
		}
	}
	return false
}

func isValidPriority(p models.Priority) bool {
	for _, allowed := range allowedPriorities {
		if p == allowed {
			return true
		}
	}
	return false
}

func isValidSort(s models.SortOrder) bool {
	for _, allowed := range allowedSorts {
		if s == allowed {
			return true
		}
	}
	return false
}

// validateItem checks a fully populated item, as built right before insert.
//
// Default fields: ID, OwnerID, Name, Category, Priority.
func (v *ItemValidator) validateItem(_ context.Context, item models.Item, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldName, FieldCategory, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(item.ID) {
				return ErrInvalidItemID
			}
		case FieldOwnerID:
			if item.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldName:
			if !IsValidName(item.Name) {
				return ErrInvalidName
			}
		case FieldCategory:
			if !isValidCategory(item.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			if !isValidPriority(item.Priority) {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCreateRequest checks a create body. Category and priority may be
// empty, in which case defaults apply later.
//
// Default fields: Name, Category, Priority.
func (v *ItemValidator) validateCreateRequest(_ context.Context, request models.CreateItemRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCategory, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !IsValidName(request.Name) {
				return ErrInvalidName
			}
		case FieldCategory:
			if request.Category != "" && !isValidCategory(request.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			if request.Priority != "" && !isValidPriority(request.Priority) {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemUpdate checks a partial update. Only non-nil fields are
// inspected.
//
// Default fields: ID, OwnerID, UpdateFields, Name, Category, Priority.
func (v *ItemValidator) validateItemUpdate(_ context.Context, update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldOwnerID, FieldUpdateFields, FieldName, FieldCategory, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !utils.IsValidUUID(update.ID) {
				return ErrInvalidItemID
			}
		case FieldOwnerID:
			if update.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldUpdateFields:
			if update.IsEmpty() {
				return ErrNoFieldsToUpdate
			}
		case FieldName:
			if update.Name != nil && !IsValidName(*update.Name) {
				return ErrInvalidName
			}
		case FieldCategory:
			if update.Category != nil && !isValidCategory(*update.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			if update.Priority != nil && !isValidPriority(*update.Priority) {
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateItemFilter checks list options. Empty values mean no constraint.
// Category and priority are exact-match filters, so by default a value
// outside the known set is not an error and simply matches nothing.
//
// Default fields: OwnerID, Sort.
func (v *ItemValidator) validateItemFilter(_ context.Context, filter models.ItemFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldSort}
	}

	for _, f := range fields {
		switch f {
		case FieldOwnerID:
			if filter.OwnerID == "" {
				return ErrInvalidOwnerID
			}
		case FieldCategory:
			if filter.Category != "" && !isValidCategory(filter.Category) {
				return ErrInvalidCategory
			}
		case FieldPriority:
			if filter.Priority != "" && !isValidPriority(filter.Priority) {
				return ErrInvalidPriority
			}
		case FieldSort:
			if filter.Sort != "" && !isValidSort(filter.Sort) {
				return ErrInvalidSort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category is one of the fixed item categories.
type Category string

const (
	CategoryPersonal Category = "personal"
	CategoryWork     Category = "work"
	CategoryShopping Category = "shopping"
	CategoryHealth   Category = "health"
	CategoryOther    Category = "other"
)

// Priority is one of the fixed item priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Defaults applied when an item is created without a category or priority.
const (
	DefaultCategory = CategoryPersonal
	DefaultPriority = PriorityMedium
)

// Item is a single task record owned by exactly one user.
type Item struct {
	// ID is the opaque unique identifier of the item (UUID).
	ID string `json:"id"`

	// OwnerID references the user that owns the item. Every query on items
	// is filtered by this column.
	OwnerID string `json:"ownerId"`

	// Name is the required short title, 1 to 100 characters.
	Name string `json:"name"`

	// Description is optional free text. nil is stored as NULL.
	Description *string `json:"description"`

	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Done     bool     `json:"done"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Item model.
func (i Item) TableName() string {
	return "items"
}

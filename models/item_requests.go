package models

import "time"

// SortOrder selects the ordering of a list query.
type SortOrder string

const (
	SortCreatedDesc SortOrder = "created_desc"
	SortCreatedAsc  SortOrder = "created_asc"
	SortNameAsc     SortOrder = "name_asc"
	SortNameDesc    SortOrder = "name_desc"
	// SortPriority orders high, medium, low; equal priorities keep insertion order.
	SortPriority SortOrder = "priority"
)

// ItemFilter holds the list options. Empty fields mean "no constraint";
// non-empty fields are AND-combined.
type ItemFilter struct {
	// OwnerID is always set from the authenticated session, never from
	// the query string.
	OwnerID string `json:"-"`

	Category Category  `json:"category,omitempty"`
	Priority Priority  `json:"priority,omitempty"`
	Search   string    `json:"search,omitempty"`
	Sort     SortOrder `json:"sort,omitempty"`
}

// CreateItemRequest is the request body of POST /items.
type CreateItemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Category    Category `json:"category,omitempty"`
	Priority    Priority `json:"priority,omitempty"`
}

// ItemUpdate represents a partial update of a single item.
// Only non-nil fields are written; UpdatedAt is always written.
type ItemUpdate struct {
	// ID is the identifier of the item to update. Taken from the URL.
	ID string `json:"-"`

	// OwnerID is the authenticated user. Taken from the session.
	OwnerID string `json:"-"`

	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	Done        *bool     `json:"done,omitempty"`

	UpdatedAt time.Time `json:"-"`
}

// IsEmpty reports whether no mutable field is set.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Description == nil &&
		u.Category == nil &&
		u.Priority == nil &&
		u.Done == nil
}

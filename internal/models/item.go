package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Item is the single record kept in the items table. ID is the partition key
// and never changes once written; Name is the only mutable attribute.
type Item struct {
	ID   string `json:"id" dynamodbav:"id" db:"id" validate:"required"`
	Name string `json:"name" dynamodbav:"name" db:"name" validate:"required"`
}

// ItemPayload is the decoded request body. Fields left out of the body stay nil.
type ItemPayload struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

var validate = validator.New()

// NewItem creates an item from an id and a name
func NewItem(id, name string) *Item {
	return &Item{ID: id, Name: name}
}

// Validate validates the item data
func (i *Item) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("item validation failed: %w", err)
	}
	return nil
}

// Attributes returns the item as a flat attribute map
func (i *Item) Attributes() map[string]any {
	return map[string]any{
		"id":   i.ID,
		"name": i.Name,
	}
}

// GetID returns the payload id, or the empty string when absent
func (p *ItemPayload) GetID() string {
	if p == nil || p.ID == nil {
		return ""
	}
	return *p.ID
}

// GetName returns the payload name, or the empty string when absent
func (p *ItemPayload) GetName() string {
	if p == nil || p.Name == nil {
		return ""
	}
	return *p.Name
}

// HasIDAndName reports whether both id and name are present and non-empty
func (p *ItemPayload) HasIDAndName() bool {
	return p.GetID() != "" && p.GetName() != ""
}

package models

import (
	"testing"
)

func stringPtr(s string) *string {
	return &s
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name    string
		item    *Item
		wantErr bool
	}{
		{name: "valid item", item: NewItem("1", "a"), wantErr: false},
		{name: "missing id", item: NewItem("", "a"), wantErr: true},
		{name: "missing name", item: NewItem("1", ""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItem_Attributes(t *testing.T) {
	attrs := NewItem("1", "a").Attributes()

	if attrs["id"] != "1" {
		t.Errorf("Attributes()[id] = %v, want 1", attrs["id"])
	}
	if attrs["name"] != "a" {
		t.Errorf("Attributes()[name] = %v, want a", attrs["name"])
	}
}

func TestItemPayload_HasIDAndName(t *testing.T) {
	tests := []struct {
		name    string
		payload *ItemPayload
		want    bool
	}{
		{name: "nil payload", payload: nil, want: false},
		{name: "empty payload", payload: &ItemPayload{}, want: false},
		{name: "id only", payload: &ItemPayload{ID: stringPtr("1")}, want: false},
		{name: "name only", payload: &ItemPayload{Name: stringPtr("a")}, want: false},
		{name: "empty name", payload: &ItemPayload{ID: stringPtr("1"), Name: stringPtr("")}, want: false},
		{name: "both present", payload: &ItemPayload{ID: stringPtr("1"), Name: stringPtr("a")}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.HasIDAndName(); got != tt.want {
				t.Errorf("HasIDAndName() = %v, want %v", got, tt.want)
			}
		})
	}
}

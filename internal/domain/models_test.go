package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDisplayText(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"primitive", Primitive("Apple"), "Apple"},
		{"labeled uses name", Labeled("Banana", "b"), "Banana"},
		{"labeled without name falls back to value", Labeled("", 42), "42"},
		{"invalid", Item{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.DisplayText())
		})
	}
}

func TestItemPayload(t *testing.T) {
	assert.Equal(t, "Apple", Primitive("Apple").Payload())
	assert.Equal(t, 7, Labeled("Seven", 7).Payload())
	assert.Equal(t, "Name only", Labeled("Name only", nil).Payload())
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, Primitive("").Validate())
	assert.NoError(t, Labeled("x", nil).Validate())
	assert.NoError(t, Labeled("", "v").Validate())

	err := Labeled("", nil).Validate()
	assert.True(t, errors.Is(err, ErrMalformedItem))

	err = Item{Kind: ItemKind(9)}.Validate()
	assert.True(t, errors.Is(err, ErrMalformedItem))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Index: 3, Err: ErrMalformedItem}
	assert.Equal(t, "item 3: malformed item", err.Error())
	assert.True(t, errors.Is(err, ErrMalformedItem))
}

func TestItemJSON(t *testing.T) {
	data, err := json.Marshal(Labeled("Banana", "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"labeled","name":"Banana","value":"b"}`, string(data))
}

func TestSelectionValues(t *testing.T) {
	multi := Selection{Multiple: true, Indices: []int{1, 4}, Index: None}
	assert.Equal(t, []int{1, 4}, multi.Values())
	assert.False(t, multi.Empty())

	single := Selection{Index: 2}
	assert.Equal(t, []int{2}, single.Values())

	none := Selection{Index: None}
	assert.Nil(t, none.Values())
	assert.True(t, none.Empty())
}

package domain

import (
	"errors"
	"fmt"
)

// None marks the absence of an index (no focus, no anchor, no selection)
const None = -1

// ErrMalformedItem is returned when an item is neither Primitive nor Labeled
var ErrMalformedItem = errors.New("malformed item")

// ItemKind tags the variant an Item carries
type ItemKind int

const (
	KindInvalid ItemKind = iota
	KindPrimitive
	KindLabeled
)

func (k ItemKind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindLabeled:
		return "labeled"
	default:
		return "invalid"
	}
}

// MarshalText encodes the kind by name
func (k ItemKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Item is one entry of the list. Its identity inside a list is its position.
type Item struct {
	Kind  ItemKind `json:"kind"`
	Text  string   `json:"text,omitempty"`  // display text of a Primitive item
	Name  string   `json:"name,omitempty"`  // display name of a Labeled item
	Value any      `json:"value,omitempty"` // underlying value of a Labeled item
}

// Primitive creates a plain display-string item
func Primitive(text string) Item {
	return Item{Kind: KindPrimitive, Text: text}
}

// Labeled creates an item with a display name and an underlying value
func Labeled(name string, value any) Item {
	return Item{Kind: KindLabeled, Name: name, Value: value}
}

// DisplayText returns the text shown and matched for the item.
// Labeled items without a name fall back to their value.
func (i Item) DisplayText() string {
	switch i.Kind {
	case KindPrimitive:
		return i.Text
	case KindLabeled:
		if i.Name != "" {
			return i.Name
		}
		if i.Value != nil {
			return fmt.Sprint(i.Value)
		}
	}
	return ""
}

// Payload returns what the item stands for: the text of a Primitive,
// the value of a Labeled item.
func (i Item) Payload() any {
	if i.Kind == KindLabeled && i.Value != nil {
		return i.Value
	}
	return i.DisplayText()
}

// Validate reports whether the item is a well-formed variant
func (i Item) Validate() error {
	switch i.Kind {
	case KindPrimitive:
		return nil
	case KindLabeled:
		if i.Name == "" && i.Value == nil {
			return fmt.Errorf("%w: labeled item has neither name nor value", ErrMalformedItem)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrMalformedItem, int(i.Kind))
	}
}

// ValidationError describes an item rejected at catalog construction
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Selection is the normalized payload emitted after every selection change.
// Multi-select lists carry the full index set; single-select lists carry the
// sole selected index or None.
type Selection struct {
	Multiple bool  `json:"multiple"`
	Indices  []int `json:"indices,omitempty"`
	Index    int   `json:"index"`
}

// Values returns the selected indices regardless of mode
func (s Selection) Values() []int {
	if s.Multiple {
		return append([]int(nil), s.Indices...)
	}
	if s.Index == None {
		return nil
	}
	return []int{s.Index}
}

// Empty reports whether nothing is selected
func (s Selection) Empty() bool {
	return len(s.Values()) == 0
}

package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listselect/internal/domain"
)

func TestNew(t *testing.T) {
	items := []domain.Item{domain.Primitive("Apple"), domain.Labeled("Banana", 42)}
	c, err := New(items)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.LastIndex())
	assert.Equal(t, "Apple", c.DisplayText(0))
	assert.Equal(t, "Banana", c.DisplayText(1))

	// The catalog keeps its own copy
	items[0] = domain.Primitive("Changed")
	assert.Equal(t, "Apple", c.DisplayText(0))
}

func TestNewRejectsMalformedItems(t *testing.T) {
	_, err := New([]domain.Item{domain.Primitive("ok"), {}})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Index)
	assert.True(t, errors.Is(err, domain.ErrMalformedItem))

	_, err = New([]domain.Item{domain.Labeled("", nil)})
	assert.ErrorIs(t, err, domain.ErrMalformedItem)
}

func TestBoundedLookups(t *testing.T) {
	c, err := New([]domain.Item{domain.Primitive("only")})
	require.NoError(t, err)

	for _, index := range []int{domain.None, 1, 100} {
		assert.False(t, c.Contains(index))
		_, ok := c.At(index)
		assert.False(t, ok)
		assert.Equal(t, "", c.DisplayText(index))
	}

	empty, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, domain.None, empty.LastIndex())
}

func TestFilter(t *testing.T) {
	c, err := New([]domain.Item{
		domain.Primitive("Apple"),
		domain.Primitive("Banana"),
		domain.Primitive("Apricot"),
	})
	require.NoError(t, err)

	filtered := c.Filter(func(item domain.Item) bool {
		return strings.HasPrefix(item.DisplayText(), "Ap")
	})
	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, "Apple", filtered.DisplayText(0))
	assert.Equal(t, "Apricot", filtered.DisplayText(1))
	assert.Equal(t, 3, c.Len(), "source is untouched")

	items := filtered.Items()
	items[0] = domain.Primitive("x")
	assert.Equal(t, "Apple", filtered.DisplayText(0), "Items returns a copy")
}

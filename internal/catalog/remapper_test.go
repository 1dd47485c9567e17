package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-meta/internal/diagnostic"
)

func TestRemapper_ResolveIsTotal(t *testing.T) {
	r := NewRemapper()

	for _, name := range []string{"App.Models", "", "System", "App.Models.Inner"} {
		assert.Equal(t, name, r.Resolve(name))
	}
}

func TestRemapper_Remap(t *testing.T) {
	r := NewRemapper()
	require.NoError(t, r.Remap("App.Models", "Models"))

	for range 3 {
		assert.Equal(t, "Models", r.Resolve("App.Models"))
	}

	// Prefixes and children are not remapped.
	assert.Equal(t, "App", r.Resolve("App"))
	assert.Equal(t, "App.Models.Inner", r.Resolve("App.Models.Inner"))
	assert.True(t, r.Has("App.Models"))
	assert.Equal(t, 1, r.Len())
}

func TestRemapper_Duplicate(t *testing.T) {
	r := NewRemapper()
	require.NoError(t, r.Remap("App.Models", "Models"))

	err := r.Remap("App.Models", "Other")
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrDuplicate)
	assert.Contains(t, err.Error(), "App.Models")

	assert.Equal(t, "Models", r.Resolve("App.Models"))
}

func TestRemapper_EmptySource(t *testing.T) {
	r := NewRemapper()

	err := r.Remap("", "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrConfiguration)
}

func TestRemapper_FrozenAndEntries(t *testing.T) {
	r := NewRemapper()
	require.NoError(t, r.Remap("B", "b"))
	require.NoError(t, r.Remap("A", "a"))
	assert.False(t, r.Frozen())
	r.Freeze()
	assert.True(t, r.Frozen())

	assert.ErrorIs(t, r.Remap("C", "c"), ErrFrozen)
	assert.Equal(t, []Remap{{Source: "A", Target: "a"}, {Source: "B", Target: "b"}}, r.Entries())
}

package fielddefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraitRegistryRegister(t *testing.T) {
	t.Run("register and look up", func(t *testing.T) {
		r := NewTraitRegistry()

		err := r.RegisterProc("display_proc", func(f *FieldDef) any { return nil })
		require.NoError(t, err)

		assert.True(t, r.Has("display_proc"))
		cat, ok := r.Category("display_proc")
		require.True(t, ok)
		assert.Equal(t, CategoryProc, cat)
	})

	t.Run("same category replaces the provider", func(t *testing.T) {
		r := NewTraitRegistry()

		require.NoError(t, r.RegisterArg("css_class", func(f *FieldDef) any { return "old" }))
		require.NoError(t, r.RegisterArg("css_class", func(f *FieldDef) any { return "new" }))

		k, ok := r.lookup("css_class")
		require.True(t, ok)
		assert.Equal(t, "new", k.provider(nil))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("category mismatch is a conflict", func(t *testing.T) {
		r := NewTraitRegistry()

		require.NoError(t, r.RegisterProc("formatter", nil))
		err := r.RegisterArg("formatter", nil)
		require.Error(t, err)

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "formatter", conflict.Kind)
		assert.Equal(t, CategoryProc, conflict.Registered)
		assert.Equal(t, CategoryArg, conflict.Attempted)

		// The original registration survives.
		cat, ok := r.Category("formatter")
		require.True(t, ok)
		assert.Equal(t, CategoryProc, cat)
	})

	t.Run("nil provider is a registered kind with an absent default", func(t *testing.T) {
		r := NewTraitRegistry()

		require.NoError(t, r.RegisterArg("tooltip", nil))
		assert.True(t, r.Has("tooltip"))
	})
}

func TestTraitRegistryKinds(t *testing.T) {
	r := NewTraitRegistry()
	require.NoError(t, r.RegisterProc("first", nil))
	require.NoError(t, r.RegisterArg("second", nil))
	require.NoError(t, r.RegisterMixed("third", nil))

	assert.Equal(t, []string{"first", "second", "third"}, r.Kinds())
	assert.Equal(t, 3, r.Len())

	// Re-registration keeps the original position.
	require.NoError(t, r.RegisterArg("second", func(f *FieldDef) any { return 1 }))
	assert.Equal(t, []string{"first", "second", "third"}, r.Kinds())

	// The returned slice is a copy.
	kinds := r.Kinds()
	kinds[0] = "mutated"
	assert.Equal(t, []string{"first", "second", "third"}, r.Kinds())
}

func TestTraitRegistryCategoryMissing(t *testing.T) {
	r := NewTraitRegistry()
	_, ok := r.Category("nope")
	assert.False(t, ok)
	assert.False(t, r.Has("nope"))
}

package optional_test

import (
	"testing"

	"github.com/on-the-ground/call_able_go/shared/optional"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeAndNone(t *testing.T) {
	s := optional.Some(3)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())

	n := optional.None[int]()
	assert.False(t, n.IsSome())
	assert.True(t, n.IsNone())
}

func TestZeroValueIsNone(t *testing.T) {
	var o optional.Option[string]
	assert.True(t, o.IsNone())
}

func TestUnwrap(t *testing.T) {
	v, ok := optional.Some("x").Unwrap()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v2, ok := optional.None[string]().Unwrap()
	assert.False(t, ok)
	assert.Equal(t, "", v2)
}

func TestOr(t *testing.T) {
	assert.Equal(t, 1, optional.Some(1).Or(9))
	assert.Equal(t, 9, optional.None[int]().Or(9))
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, 5, optional.MustGet(optional.Some(5)))
	assert.PanicsWithError(t, optional.ErrAbsent.Error(), func() {
		optional.MustGet(optional.None[int]())
	})
}

func TestMap(t *testing.T) {
	doubled := optional.Map(optional.Some(2), func(i int) int { return i * 2 })
	v, ok := doubled.Unwrap()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	absent := optional.Map(optional.None[int](), func(i int) int { return i * 2 })
	assert.True(t, absent.IsNone())
}

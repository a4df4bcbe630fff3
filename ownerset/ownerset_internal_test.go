package ownerset

import (
	"testing"

	"github.com/on-the-ground/shared_instance_go/ownership"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveClearsVacatedSlot(t *testing.T) {
	set := New[ownership.Shared[*int]](3)
	refs := make([]ownership.Shared[*int], 3)
	for i := range refs {
		v := i
		refs[i] = ownership.NewShared(&v)
		require.True(t, set.Insert(refs[i]))
	}

	removed, ok := set.Remove(refs[0])
	require.True(t, ok)
	defer removed.Reset()

	assert.Equal(t, 2, set.Len())
	vacated := set.items[:cap(set.items)][set.Len()]
	assert.True(t, vacated.IsNil())
	assert.Zero(t, vacated.Owner())

	for _, s := range set.Drain() {
		s.Reset()
	}
}

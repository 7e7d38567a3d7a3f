package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddRemove(t *testing.T) {
	s := New("a", "b")
	s.Add("c", "d")
	s.Remove("d", "e")
	assert.True(t, s.Has("c"))
	assert.False(t, s.Has("d"))
	assert.True(t, s.HasAny("x", "a"))
	assert.False(t, s.HasAny())
	assert.Equal(t, []string{"a", "b", "c"}, Sorted(s))
}

func TestSet_NilAdd(t *testing.T) {
	var s Set[int]
	assert.False(t, s.Has(1))
	assert.Nil(t, Sorted(s))
	s = s.Add(3, 1, 2)
	assert.Equal(t, []int{1, 2, 3}, Sorted(s))
}

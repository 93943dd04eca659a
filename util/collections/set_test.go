package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(2))

	set.Add(2)
	set.Add(4)
	assert.Equal(t, 4, set.Len())

	set.Remove(1)
	set.Remove(10)
	assert.False(t, set.Contains(1))
	assert.Equal(t, NewSet(2, 3, 4), set)
}

func TestSetOperations(t *testing.T) {
	left := NewSet("a", "b", "c")
	right := NewSet("b", "c", "d")

	assert.Equal(t, NewSet("a"), left.Difference(right))
	assert.Equal(t, NewSet("d"), right.Difference(left))
	assert.Equal(t, NewSet("b", "c"), left.Intersection(right))
	assert.Equal(t, 0, left.Intersection(NewSet("z")).Len())

	assert.True(t, NewSet("b", "c").IsSubset(left))
	assert.True(t, NewSet[string]().IsSubset(left))
	assert.False(t, left.IsSubset(right))
	assert.False(t, left.IsSubset(NewSet("a")))

	assert.True(t, left.Equal(NewSet("c", "b", "a")))
	assert.False(t, left.Equal(right))
	assert.False(t, left.Equal(NewSet("a", "b")))
}

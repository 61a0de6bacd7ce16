package membership

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	x := New(3)
	assert.Equal(t, 3, x.Clusters())

	x.Add(0, 1)
	x.Add(0, 2)
	x.Add(1, 3)

	assert.Equal(t, []uint32{1, 2}, x.Members(0))
	assert.Equal(t, []uint32{3}, x.Members(1))
	assert.Empty(t, x.Members(2))
	assert.Equal(t, 2, x.Count(0))
	assert.Equal(t, 0, x.Count(2))
}

func TestIndex_Move(t *testing.T) {
	x := New(2)
	x.Add(0, 7)

	x.Move(7, 0, 1)
	assert.Empty(t, x.Members(0))
	assert.Equal(t, []uint32{7}, x.Members(1))

	// Moving back restores the original state exactly.
	x.Move(7, 1, 0)
	assert.Equal(t, []uint32{7}, x.Members(0))
	assert.Empty(t, x.Members(1))
}

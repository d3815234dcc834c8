package chain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInt64(t *testing.T) {
	v, ok := addInt64(2, 3)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)

	_, ok = addInt64(math.MaxInt64, 1)
	assert.False(t, ok)

	v, ok = addInt64(math.MaxInt64-1, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), v)
}

func TestMulInt64(t *testing.T) {
	v, ok := mulInt64(0, math.MaxInt64)
	assert.True(t, ok)
	assert.Zero(t, v)

	v, ok = mulInt64(68, 29)
	assert.True(t, ok)
	assert.Equal(t, int64(1972), v)

	_, ok = mulInt64(math.MaxInt64/2+1, 2)
	assert.False(t, ok)
}

package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestDivisibleByM(t *testing.T) {
	assert.Equal(t, 8, NearestDivisibleByM(1, 8))
	assert.Equal(t, 8, NearestDivisibleByM(8, 8))
	assert.Equal(t, 16, NearestDivisibleByM(9, 8))
	assert.Equal(t, 0, NearestDivisibleByM(0, 8))
}

func TestPaddingToM(t *testing.T) {
	expected := map[int]int{
		1:  7,
		4:  4,
		7:  1,
		8:  0,
		9:  7,
		16: 0,
	}
	for n, padding := range expected {
		assert.Equal(t, padding, PaddingToM(n, 8), "n = %d", n)
	}
}

package fu

import (
	"testing"

	"gotest.tools/assert"
)

func Test_Indmax(t *testing.T) {
	assert.Assert(t, Indmax([]float64{0.9, 0.1}) == 0)
	assert.Assert(t, Indmax([]float64{0.2, 0.8}) == 1)
	// ties break to the lowest index
	assert.Assert(t, Indmax([]float64{0.5, 0.5}) == 0)
	assert.Assert(t, Indmax([]float64{1, 3, 3, 2}) == 1)
}

func Test_Indmaxd(t *testing.T) {
	assert.Assert(t, Indmaxd([]float64{1, 3, 3, 2}) == 2)
}

func Test_Fnzi(t *testing.T) {
	assert.Assert(t, Fnzi(0, 3, 5) == 3)
	assert.Assert(t, Fnzi(0, 0) == 0)
	assert.Assert(t, Fnzi(7, 3) == 7)
}

func Test_Clamp(t *testing.T) {
	assert.Assert(t, Clamp(0, 1e-15, 1-1e-15) == 1e-15)
	assert.Assert(t, Clamp(1, 1e-15, 1-1e-15) == 1-1e-15)
	assert.Assert(t, Clamp(0.5, 1e-15, 1-1e-15) == 0.5)
}


package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	a := Vec2f{3, 4}

	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, Vec2f{4, 6}, a.Add(Vec2f{1, 2}))
	assert.Equal(t, Vec2f{2, 2}, a.Sub(Vec2f{1, 2}))
	assert.Equal(t, Vec2f{1.5, 2}, a.MulScalar(0.5))
	assert.Equal(t, float32(12), a.Area())
}

func TestVec2Of(t *testing.T) {
	size := Vec2i{641, 480}

	center := Vec2Of[float64](size).MulScalar(0.5)
	assert.Equal(t, Vec2d{320.5, 240}, center)
}

func TestVec4(t *testing.T) {
	c := Vec4f{1, 0.5, 0.25, 1}

	r, g, b, a := c.Mul(Vec4f{0.5, 0.5, 0.5, 1}).XYZW()
	assert.Equal(t, []float32{0.5, 0.25, 0.125, 1}, []float32{r, g, b, a})
}

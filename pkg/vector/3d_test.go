package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateZ(t *testing.T) {
	r := V3D{1, 0, 5}.RotateZ(90)
	assert.InDelta(t, 0, r.X(), 1e-9)
	assert.InDelta(t, 1, r.Y(), 1e-9)
	assert.Equal(t, 5., r.Z())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, V3D{-500, 20, 500}, V3D{-900, 20, 501}.Clamp(500))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5., V3D{0, 0, 0}.Distance(V3D{3, 4, 0}))
	assert.Equal(t, V3D{2, 2, 2}, V3D{1, 1, 1}.Add(V3D{1, 1, 1}))
	assert.Equal(t, V3D{0, 0, 0}, V3D{1, 1, 1}.Sub(V3D{1, 1, 1}))
	assert.Equal(t, V3D{2, 4, 6}, V3D{1, 2, 3}.Scale(2))
}

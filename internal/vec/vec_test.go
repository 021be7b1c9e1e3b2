package vec

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestVec3_Centered(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{-8, 3, -8}, Vec3{X: 0, Y: 3, Z: 0}.Centered(16, 16))
	assert.Equal(t, mgl64.Vec3{7, 0, 7}, Vec3{X: 15, Y: 0, Z: 15}.Centered(16, 16))
	// нечётная сетка даёт полуцелые позиции
	assert.Equal(t, mgl64.Vec3{-1.5, 0, 0.5}, Vec3{X: 0, Y: 0, Z: 2}.Centered(3, 3))
}

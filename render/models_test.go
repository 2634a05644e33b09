package render

import (
	"snowman/assets"
	"snowman/world"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMesh(models []Model, name string) int {
	n := 0
	for _, m := range models {
		if m.Mesh == name {
			n++
		}
	}
	return n
}

func TestModelsHideHeldSnowball(t *testing.T) {
	s := world.NewScene()
	models := Models(s)
	assert.Len(t, models, 11)
	assert.Equal(t, 0, countMesh(models, assets.Snowball))
	assert.Equal(t, 4, countMesh(models, assets.SnowmanArm))

	require.True(t, s.Snowball.Throw(s.Camera.Forward()))
	models = Models(s)
	assert.Len(t, models, 12)
	assert.Equal(t, 1, countMesh(models, assets.Snowball))
}

func TestGroundHasNoHighlight(t *testing.T) {
	for _, m := range Models(world.NewScene()) {
		assert.Equal(t, m.Mesh != assets.Ground, m.Specular, m.Mesh)
	}
}

func TestArmFollowsSnowmanBody(t *testing.T) {
	s := world.NewScene()
	s.Snowmen[0].Yaw = 90
	body := SnowmanMatrix(&s.Snowmen[0])

	shoulder := body.Mul4x1(mgl32.Vec4{armShoulderX, armShoulderY, 0, 1})
	arm := ArmMatrix(body, 1, 45).Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, shoulder.X(), arm.X(), 1e-5)
	assert.InDelta(t, shoulder.Y(), arm.Y(), 1e-5)
	assert.InDelta(t, shoulder.Z(), arm.Z(), 1e-5)

	// A yaw of 90 turns the body's +X towards -Z.
	assert.InDelta(t, s.Snowmen[0].Position.Z()-armShoulderX, float64(shoulder.Z()), 1e-5)
}

func TestArmSwingRotatesAboutX(t *testing.T) {
	body := mgl32.Ident4()
	tip := ArmMatrix(body, -1, 90).Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, -armShoulderX, tip.X(), 1e-5)
	assert.InDelta(t, armShoulderY, tip.Y(), 1e-5)
	assert.InDelta(t, armScale, tip.Z(), 1e-5)
}

func TestGroundLiesFlat(t *testing.T) {
	s := world.NewScene()
	corner := GroundMatrix(&s.Ground).Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	assert.InDelta(t, 15, corner.X(), 1e-4)
	assert.InDelta(t, 1.5, corner.Y(), 1e-4)
	assert.InDelta(t, -15, corner.Z(), 1e-4)
}

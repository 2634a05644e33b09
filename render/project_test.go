package render

import (
	"snowman/mesh"
	"snowman/world"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testWidth  = 1200
	testHeight = 800
)

func triangleMeshes() map[string]*mesh.Mesh {
	return map[string]*mesh.Mesh{
		"tri": {
			Name:      "tri",
			Positions: []float32{-0.1, -0.1, 0, 0.1, -0.1, 0, 0, 0.1, 0},
			Normals:   []float32{0, 0, -1, 0, 0, -1, 0, 0, -1},
			UVs:       []float32{0, 0, 1, 0, 0.5, 1},
		},
	}
}

func placed(texture string, x, y, z float32) Model {
	return Model{Mesh: "tri", Texture: texture, Matrix: mgl32.Translate3D(x, y, z)}
}

func TestProjectCentersTriangleAhead(t *testing.T) {
	s := world.NewScene()
	frame := NewFrame(&s.Camera, testWidth, testHeight)

	out := frame.Project([]Model{placed("a", 0, 2, -5)}, triangleMeshes(), nil)
	require.Len(t, out, 1)

	var x, y float32
	for _, v := range out[0].Vertices {
		x += v.X / 3
		y += v.Y / 3
	}
	assert.InDelta(t, testWidth/2, x, 5)
	assert.InDelta(t, testHeight/2, y, 5)
	assert.InDelta(t, 10, out[0].Depth, 1e-3)
	assert.Equal(t, float32(0.5), out[0].Vertices[2].U)
	assert.Equal(t, float32(1), out[0].Vertices[2].V)
}

func TestProjectCullsBehindCamera(t *testing.T) {
	s := world.NewScene()
	frame := NewFrame(&s.Camera, testWidth, testHeight)

	out := frame.Project([]Model{placed("a", 0, 2, -20)}, triangleMeshes(), nil)
	assert.Empty(t, out)
}

func TestProjectCullsOffscreen(t *testing.T) {
	s := world.NewScene()
	frame := NewFrame(&s.Camera, testWidth, testHeight)

	out := frame.Project([]Model{placed("a", 40, 2, -10)}, triangleMeshes(), nil)
	assert.Empty(t, out)
}

func TestProjectSortsFarToNear(t *testing.T) {
	s := world.NewScene()
	frame := NewFrame(&s.Camera, testWidth, testHeight)

	models := []Model{placed("near", 0, 2, -10), placed("far", 0, 2, 10), placed("middle", 0, 2, 0)}
	out := frame.Project(models, triangleMeshes(), nil)
	require.Len(t, out, 3)
	assert.Equal(t, "far", out[0].Texture)
	assert.Equal(t, "middle", out[1].Texture)
	assert.Equal(t, "near", out[2].Texture)
}

func TestProjectSkipsUnknownMesh(t *testing.T) {
	s := world.NewScene()
	frame := NewFrame(&s.Camera, testWidth, testHeight)

	out := frame.Project([]Model{{Mesh: "missing"}}, triangleMeshes(), nil)
	assert.Empty(t, out)
}

func TestToonBands(t *testing.T) {
	assert.Equal(t, float32(1), toon(lightDir, lightDir, false))
	assert.Equal(t, float32(0.45), toon(lightDir.Mul(-1), lightDir, false))

	// Facing both the light and the eye earns the highlight on top of the band.
	side := unit(mgl32.Vec3{1, 0.9, 0})
	plain := toon(side, side, false)
	lit := toon(side, side, true)
	assert.GreaterOrEqual(t, lit, plain)
}

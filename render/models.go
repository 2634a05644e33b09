// Package render turns a world.Scene into screen-space triangles. It knows
// nothing about the GPU; the client uploads and draws what it produces.
package render

import (
	"snowman/assets"
	"snowman/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	armShoulderX  = 0.8
	armShoulderY  = 2.5
	armScale      = 0.2
	snowballScale = 0.2
)

// Model is one draw call: a mesh, its texture and its model matrix.
type Model struct {
	Mesh     string
	Texture  string
	Matrix   mgl32.Mat4
	Specular bool
}

func vec32(v world.Vector) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func degrees(d float64) float32 {
	return mgl32.DegToRad(float32(d))
}

func translate(v world.Vector) mgl32.Mat4 {
	return mgl32.Translate3D(float32(v[0]), float32(v[1]), float32(v[2]))
}

func scale(s float64) mgl32.Mat4 {
	return mgl32.Scale3D(float32(s), float32(s), float32(s))
}

// GroundMatrix stands the XY ground mesh up into the XZ-plane.
func GroundMatrix(g *world.Obstacle) mgl32.Mat4 {
	return translate(g.Position).Mul4(mgl32.HomogRotate3DX(degrees(-90))).Mul4(scale(g.Scale))
}

// TreeMatrix places a Z-up tree mesh.
func TreeMatrix(t *world.Obstacle) mgl32.Mat4 {
	return translate(t.Position).Mul4(scale(t.Scale)).Mul4(mgl32.HomogRotate3DX(degrees(-90)))
}

func SnowmanMatrix(m *world.Snowman) mgl32.Mat4 {
	return translate(m.Position).Mul4(mgl32.HomogRotate3DY(degrees(m.Yaw)))
}

// ArmMatrix hangs an arm off its snowman's body. side is +1 for the right arm and
// -1 for the left; angle is the swing about X in degrees.
func ArmMatrix(body mgl32.Mat4, side float32, angle float64) mgl32.Mat4 {
	local := mgl32.Translate3D(side*armShoulderX, armShoulderY, 0).
		Mul4(mgl32.Scale3D(armScale, armScale, armScale)).
		Mul4(mgl32.HomogRotate3DX(degrees(angle)))
	return body.Mul4(local)
}

func SnowballMatrix(b *world.Snowball) mgl32.Mat4 {
	return translate(b.Position).Mul4(scale(snowballScale))
}

// Models lists everything to draw for s. The snowball only shows while it flies
// and only mobile snowmen have arms.
func Models(s *world.Scene) []Model {
	models := make([]Model, 0, 4+2*len(s.Snowmen)+len(s.Trees))
	models = append(models, Model{
		Mesh:    assets.Ground,
		Texture: assets.Ground,
		Matrix:  GroundMatrix(&s.Ground),
	})
	for i := range s.Trees {
		models = append(models, Model{
			Mesh:     assets.Tree,
			Texture:  assets.Tree,
			Matrix:   TreeMatrix(&s.Trees[i]),
			Specular: true,
		})
	}

	bodies := make([]mgl32.Mat4, len(s.Snowmen))
	for i := range s.Snowmen {
		bodies[i] = SnowmanMatrix(&s.Snowmen[i])
		models = append(models, Model{
			Mesh:     assets.Snowman,
			Texture:  assets.Snowman,
			Matrix:   bodies[i],
			Specular: true,
		})
	}

	if s.Snowball.State == world.SnowballInFlight {
		models = append(models, Model{
			Mesh:     assets.Snowball,
			Texture:  assets.Snowman,
			Matrix:   SnowballMatrix(&s.Snowball),
			Specular: true,
		})
	}

	for i := range s.Snowmen {
		m := &s.Snowmen[i]
		if !m.Mobile {
			continue
		}
		right, left := m.Arm.Pose(m.Fleeing())
		models = append(models,
			Model{Mesh: assets.SnowmanArm, Texture: assets.SnowmanArm, Matrix: ArmMatrix(bodies[i], 1, right), Specular: true},
			Model{Mesh: assets.SnowmanArm, Texture: assets.SnowmanArm, Matrix: ArmMatrix(bodies[i], -1, left), Specular: true},
		)
	}
	return models
}

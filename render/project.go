package render

import (
	"math"
	"snowman/mesh"
	"snowman/world"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	FieldOfView = 45.0 // degrees
	Near        = 0.1
	Far         = 100.0
)

var lightDir = mgl32.Vec3{0.3, 1, 0.5}.Normalize()

// Vertex is a screen position in pixels plus a texture coordinate with v up.
type Vertex struct {
	X, Y float32
	U, V float32
}

type Triangle struct {
	Vertices [3]Vertex
	Shade    float32 // multiplies the texture colour
	Depth    float32 // distance along the view axis
	Texture  string
}

// Frame holds the camera matrices for one drawn frame.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
	Width      int
	Height     int
}

func NewFrame(c *world.Camera, width, height int) Frame {
	eye := vec32(c.Position)
	return Frame{
		View:       mgl32.LookAtV(eye, eye.Add(vec32(c.Forward())), vec32(c.Up)),
		Projection: mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(width)/float32(height), Near, Far),
		Eye:        eye,
		Width:      width,
		Height:     height,
	}
}

// Project transforms and shades every triangle of models and returns them sorted
// far to near, ready to be painted in order. out is reused when it has capacity.
func (f Frame) Project(models []Model, meshes map[string]*mesh.Mesh, out []Triangle) []Triangle {
	out = out[:0]
	viewProjection := f.Projection.Mul4(f.View)
	w, h := float32(f.Width), float32(f.Height)

	for _, model := range models {
		m := meshes[model.Mesh]
		if m == nil {
			continue
		}
		mvp := viewProjection.Mul4(model.Matrix)
		normalMatrix := model.Matrix.Mat3()

	triangles:
		for i := 0; i+2 < m.VertexCount(); i += 3 {
			var clip [3]mgl32.Vec4
			for j := 0; j < 3; j++ {
				clip[j] = mvp.Mul4x1(m.Position(i + j).Vec4(1))
				if clip[j].W() < Near {
					continue triangles
				}
			}
			if outsideFrustum(clip) {
				continue
			}

			tri := Triangle{Texture: model.Texture}
			var centroid mgl32.Vec3
			var normal mgl32.Vec3
			for j := 0; j < 3; j++ {
				ndc := clip[j].Vec3().Mul(1 / clip[j].W())
				uv := m.UV(i + j)
				tri.Vertices[j] = Vertex{
					X: (ndc.X() + 1) / 2 * w,
					Y: (1 - ndc.Y()) / 2 * h,
					U: uv.X(),
					V: uv.Y(),
				}
				tri.Depth += clip[j].W() / 3
				centroid = centroid.Add(m.Position(i + j).Mul(1.0 / 3))
				normal = normal.Add(m.Normal(i + j))
			}

			normal = normalMatrix.Mul3x1(normal)
			center := model.Matrix.Mul4x1(centroid.Vec4(1)).Vec3()
			tri.Shade = toon(unit(normal), unit(f.Eye.Sub(center)), model.Specular)
			out = append(out, tri)
		}
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Depth > out[b].Depth
	})
	return out
}

// outsideFrustum reports whether all three vertices lie beyond the same clip plane.
func outsideFrustum(clip [3]mgl32.Vec4) bool {
	var left, right, below, above, beyond int
	for _, c := range clip {
		w := c.W()
		if c.X() < -w {
			left++
		}
		if c.X() > w {
			right++
		}
		if c.Y() < -w {
			below++
		}
		if c.Y() > w {
			above++
		}
		if c.Z() > w {
			beyond++
		}
	}
	return left == 3 || right == 3 || below == 3 || above == 3 || beyond == 3
}

func unit(v mgl32.Vec3) mgl32.Vec3 {
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return v
}

// toon quantizes diffuse light into bands and adds a flat highlight when
// specular is on.
func toon(normal, toEye mgl32.Vec3, specular bool) float32 {
	var shade float32
	switch d := normal.Dot(lightDir); {
	case d > 0.95:
		shade = 1
	case d > 0.5:
		shade = 0.8
	case d > 0.25:
		shade = 0.6
	default:
		shade = 0.45
	}
	if specular {
		half := unit(lightDir.Add(toEye))
		if s := normal.Dot(half); s > 0 && math.Pow(float64(s), 32) > 0.5 {
			shade += 0.25
		}
	}
	if shade > 1 {
		shade = 1
	}
	return shade
}

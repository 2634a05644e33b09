// Package mesh decodes model files into flat, non-indexed triangle lists.
package mesh

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds one entry per vertex, every three vertices forming a triangle.
// Texture coordinates have v pointing up, as in OBJ files.
type Mesh struct {
	Name      string
	Positions []float32 // x, y, z
	Normals   []float32 // x, y, z
	UVs       []float32 // u, v
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

func (m *Mesh) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
}

func (m *Mesh) Normal(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]}
}

func (m *Mesh) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{m.UVs[2*i], m.UVs[2*i+1]}
}

var ErrEmpty = errors.New("mesh has no triangles")

// Validate checks that the vertex arrays line up.
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	switch {
	case n == 0:
		return ErrEmpty
	case len(m.Positions)%3 != 0 || n%3 != 0:
		return fmt.Errorf("%d position values do not make whole triangles", len(m.Positions))
	case len(m.Normals) != 3*n:
		return fmt.Errorf("%d normal values for %d vertices", len(m.Normals), n)
	case len(m.UVs) != 2*n:
		return fmt.Errorf("%d uv values for %d vertices", len(m.UVs), n)
	}
	return nil
}

// Decode reads the mesh called name from fsys. The format follows the file extension.
func Decode(fsys fs.FS, name string) (*Mesh, error) {
	var (
		m   *Mesh
		err error
	)
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".obj":
		f, openErr := fsys.Open(name)
		if openErr != nil {
			return nil, openErr
		}
		defer f.Close()
		m, err = decodeOBJ(name, f)
	case ".glb", ".gltf":
		m, err = decodeGLTF(fsys, name)
	default:
		return nil, fmt.Errorf("unsupported mesh format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	m.Name = name
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// fillFlatNormals gives every triangle that has no normals its face normal.
// Triangles with normals keep them.
func (m *Mesh) fillFlatNormals() {
	if len(m.Normals) != len(m.Positions) {
		m.Normals = make([]float32, len(m.Positions))
	}
	for i := 0; i+2 < m.VertexCount(); i += 3 {
		if m.Normal(i).Len() > 0 || m.Normal(i+1).Len() > 0 || m.Normal(i+2).Len() > 0 {
			continue
		}
		a, b, c := m.Position(i), m.Position(i+1), m.Position(i+2)
		n := b.Sub(a).Cross(c.Sub(a))
		if l := n.Len(); l > 0 {
			n = n.Mul(1 / l)
		}
		for j := 0; j < 3; j++ {
			copy(m.Normals[3*(i+j):], n[:])
		}
	}
}

package mesh

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"testing/iotest"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadOBJ = `# unit quad
mtllib quad.mtl
o Quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
usemtl snow
s off
f 1/1/1 2/2/1 3/3/1 -1/-1/-1
`

func TestDecodeOBJTriangulatesQuad(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(quadOBJ))
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 6, m.VertexCount())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Position(0))
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, m.Position(1))
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, m.Position(2))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.Position(3))
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, m.Position(4))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Position(5))
	assert.Equal(t, mgl32.Vec2{0, 1}, m.UV(5))
	for i := 0; i < m.VertexCount(); i++ {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normal(i))
	}
}

func TestDecodeOBJComputesMissingNormals(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader("v 0 0 0\nv 1 0 0\nv 0 0 -1\nf 1 2 3\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, m.VertexCount())
	for i := 0; i < 3; i++ {
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normal(i))
		assert.Equal(t, mgl32.Vec2{0, 0}, m.UV(i))
	}
}

func TestDecodeOBJReadError(t *testing.T) {
	_, err := DecodeOBJ(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode obj")
}

func TestMeshFromObjInterleaved(t *testing.T) {
	// position, uv, normal per vertex
	obj := &gwob.Obj{
		Indices: []int{0, 1, 2},
		Coord: []float32{
			0, 0, 0, 0, 0, 0, 0, 1,
			1, 0, 0, 1, 0, 0, 0, 1,
			0, 1, 0, 0, 1, 0, 0, 1,
		},
		TextCoordFound:       true,
		NormCoordFound:       true,
		StrideSize:           32,
		StrideOffsetPosition: 0,
		StrideOffsetTexture:  12,
		StrideOffsetNormal:   20,
	}
	m, err := meshFromObj(obj)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Position(2))
	assert.Equal(t, mgl32.Vec2{1, 0}, m.UV(1))
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, m.Normal(0))
}

func TestMeshFromObjRejectsBadIndex(t *testing.T) {
	obj := &gwob.Obj{
		Indices:    []int{0, 1, 5},
		Coord:      []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		StrideSize: 12,
	}
	_, err := meshFromObj(obj)
	assert.ErrorContains(t, err, "index 5 out of range (3 vertices)")
}

func TestMeshFromObjEmpty(t *testing.T) {
	m, err := meshFromObj(&gwob.Obj{})
	require.NoError(t, err)
	assert.ErrorIs(t, m.Validate(), ErrEmpty)
}

func TestFillFlatNormalsKeepsExisting(t *testing.T) {
	m := &Mesh{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, -1},
		Normals:   []float32{0, 0, -1, 0, 0, -1, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	m.fillFlatNormals()
	assert.Equal(t, mgl32.Vec3{0, 0, -1}, m.Normal(0))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normal(3))
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, m.Normal(5))
}

func TestDecodeByExtension(t *testing.T) {
	fsys := fstest.MapFS{
		"meshes/quad.obj":  {Data: []byte(quadOBJ)},
		"meshes/empty.obj": {Data: []byte("# nothing\n")},
		"meshes/quad.dae":  {Data: []byte("<COLLADA/>")},
		"meshes/junk.glb":  {Data: []byte("not a binary gltf")},
	}

	m, err := Decode(fsys, "meshes/quad.obj")
	require.NoError(t, err)
	assert.Equal(t, "meshes/quad.obj", m.Name)
	assert.Equal(t, 6, m.VertexCount())

	_, err = Decode(fsys, "meshes/empty.obj")
	assert.Error(t, err)

	_, err = Decode(fsys, "meshes/quad.dae")
	assert.ErrorContains(t, err, "unsupported mesh format")

	_, err = Decode(fsys, "meshes/junk.glb")
	assert.Error(t, err)

	_, err = Decode(fsys, "meshes/missing.obj")
	assert.Error(t, err)
}

func TestValidateRejectsMismatchedArrays(t *testing.T) {
	m := &Mesh{
		Positions: make([]float32, 9),
		Normals:   make([]float32, 6),
		UVs:       make([]float32, 6),
	}
	assert.ErrorContains(t, m.Validate(), "normal values")
}

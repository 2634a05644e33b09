package mesh

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/udhos/gwob"
)

// DecodeOBJ reads Wavefront OBJ geometry. Polygons come back as triangle fans and
// relative indices are resolved; materials, groups and smoothing are ignored.
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	return decodeOBJ("obj", r)
}

func decodeOBJ(name string, r io.Reader) (*Mesh, error) {
	options := &gwob.ObjParserOptions{
		Logger: func(msg string) {
			log.Printf("%s: %s", name, msg)
		},
	}
	obj, err := gwob.NewObjFromReader(name, bufio.NewReader(r), options)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return meshFromObj(obj)
}

// meshFromObj expands gwob's indexed, interleaved vertex buffer into flat
// per-vertex arrays.
func meshFromObj(obj *gwob.Obj) (*Mesh, error) {
	m := &Mesh{}
	if len(obj.Indices) == 0 {
		return m, nil
	}
	stride := obj.StrideSize / 4
	if stride < 3 {
		return nil, fmt.Errorf("stride of %d bytes cannot hold a position", obj.StrideSize)
	}
	count := len(obj.Coord) / stride

	m.Positions = make([]float32, 0, 3*len(obj.Indices))
	m.Normals = make([]float32, 0, 3*len(obj.Indices))
	m.UVs = make([]float32, 0, 2*len(obj.Indices))
	for _, i := range obj.Indices {
		if i < 0 || i >= count {
			return nil, fmt.Errorf("index %d out of range (%d vertices)", i, count)
		}
		v := obj.Coord[i*stride : (i+1)*stride]

		p := v[obj.StrideOffsetPosition/4:]
		m.Positions = append(m.Positions, p[0], p[1], p[2])

		var uv [2]float32
		if obj.TextCoordFound {
			t := v[obj.StrideOffsetTexture/4:]
			uv = [2]float32{t[0], t[1]}
		}
		m.UVs = append(m.UVs, uv[0], uv[1])

		var n [3]float32
		if obj.NormCoordFound {
			nv := v[obj.StrideOffsetNormal/4:]
			n = [3]float32{nv[0], nv[1], nv[2]}
		}
		m.Normals = append(m.Normals, n[0], n[1], n[2])
	}
	m.fillFlatNormals()
	return m, nil
}

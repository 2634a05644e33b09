package mesh

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func decodeGLTF(fsys fs.FS, name string) (*Mesh, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Buffers referenced by a .gltf are resolved next to it.
	dir, err := fs.Sub(fsys, path.Dir(name))
	if err != nil {
		return nil, err
	}
	var doc gltf.Document
	if err := gltf.NewDecoderFS(f, dir).Decode(&doc); err != nil {
		return nil, err
	}
	return meshFromDocument(&doc)
}

// meshFromDocument flattens every triangle primitive of every mesh in doc.
func meshFromDocument(doc *gltf.Document) (*Mesh, error) {
	m := &Mesh{}
	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			positionIndex, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[positionIndex], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %q positions: %w", gm.Name, err)
			}

			var normals [][3]float32
			if i, ok := prim.Attributes[gltf.NORMAL]; ok {
				if normals, err = modeler.ReadNormal(doc, doc.Accessors[i], nil); err != nil {
					return nil, fmt.Errorf("mesh %q normals: %w", gm.Name, err)
				}
			}
			var uvs [][2]float32
			if i, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[i], nil); err != nil {
					return nil, fmt.Errorf("mesh %q texture coordinates: %w", gm.Name, err)
				}
			}

			var indices []uint32
			if prim.Indices != nil {
				if indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil); err != nil {
					return nil, fmt.Errorf("mesh %q indices: %w", gm.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			for _, i := range indices {
				if int(i) >= len(positions) {
					return nil, fmt.Errorf("mesh %q: index %d out of range", gm.Name, i)
				}
				p := positions[i]
				m.Positions = append(m.Positions, p[0], p[1], p[2])

				var n [3]float32
				if int(i) < len(normals) {
					n = normals[i]
				}
				m.Normals = append(m.Normals, n[0], n[1], n[2])

				var uv [2]float32
				if int(i) < len(uvs) {
					uv = uvs[i]
				}
				// glTF puts the texture origin top-left.
				m.UVs = append(m.UVs, uv[0], 1-uv[1])
			}
		}
	}
	m.fillFlatNormals()
	return m, nil
}

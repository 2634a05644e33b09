// Package assets holds the diorama's meshes, textures and shader sources and
// decodes them into CPU-side data.
package assets

import (
	"embed"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"snowman/mesh"
	"sort"

	_ "golang.org/x/image/bmp"
)

//go:embed data
var embedded embed.FS

//go:embed data/version.txt
var Version string

// Open returns the asset file system: the embedded pack when dir is empty,
// otherwise the directory on disk.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(embedded, "data")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}

type Library struct {
	Meshes   map[string]*mesh.Mesh
	Textures map[string]image.Image
	Shaders  map[string][]byte
}

// Load decodes everything in the manifest. The first failure stops loading and is
// returned as an *Error.
func Load(fsys fs.FS, manifest Manifest) (*Library, error) {
	lib := &Library{
		Meshes:   make(map[string]*mesh.Mesh, len(manifest.Meshes)),
		Textures: make(map[string]image.Image, len(manifest.Textures)),
		Shaders:  make(map[string][]byte, len(manifest.Shaders)),
	}

	for _, name := range sortedKeys(manifest.Meshes) {
		p := manifest.Meshes[name]
		m, err := mesh.Decode(fsys, p)
		if err != nil {
			return nil, &Error{Kind: KindMesh, Name: name, Path: p, Err: err}
		}
		log.Printf("mesh %s: %d vertices", name, m.VertexCount())
		lib.Meshes[name] = m
	}

	for _, name := range sortedKeys(manifest.Textures) {
		p := manifest.Textures[name]
		img, err := decodeImage(fsys, p)
		if err != nil {
			return nil, &Error{Kind: KindTexture, Name: name, Path: p, Err: err}
		}
		lib.Textures[name] = img
	}

	for _, name := range sortedKeys(manifest.Shaders) {
		p := manifest.Shaders[name]
		src, err := fs.ReadFile(fsys, p)
		if err == nil && len(src) == 0 {
			err = errors.New("empty shader source")
		}
		if err != nil {
			return nil, &Error{Kind: KindShader, Name: name, Path: p, Err: err}
		}
		lib.Shaders[name] = src
	}
	return lib, nil
}

func decodeImage(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, errors.New("image has no pixels")
	}
	return img, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package client

import (
	"log"
	"snowman/assets"
	"snowman/mesh"

	"github.com/hajimehoshi/ebiten/v2"
)

// Assets is the GPU side of an assets.Library.
type Assets struct {
	images  map[string]*ebiten.Image
	shaders map[string]*ebiten.Shader
	meshes  map[string]*mesh.Mesh
}

func (a *Assets) Image(name string) *ebiten.Image {
	image := a.images[name]
	if image == nil {
		log.Fatalf("invalid image name: %s", name)
	}
	return image
}

func (a *Assets) Shader(name string) *ebiten.Shader {
	shader := a.shaders[name]
	if shader == nil {
		log.Fatalf("invalid shader name: %s", name)
	}
	return shader
}

// LoadAssets uploads textures and compiles shaders. A shader that fails to compile
// is reported as an *assets.Error of kind shader.
func LoadAssets(lib *assets.Library, manifest assets.Manifest) (*Assets, error) {
	a := &Assets{
		images:  make(map[string]*ebiten.Image, len(lib.Textures)),
		shaders: make(map[string]*ebiten.Shader, len(lib.Shaders)),
		meshes:  lib.Meshes,
	}

	for name, decoded := range lib.Textures {
		a.images[name] = ebiten.NewImageFromImage(decoded)
	}

	for name, src := range lib.Shaders {
		shader, err := ebiten.NewShader(src)
		if err != nil {
			return nil, &assets.Error{
				Kind: assets.KindShader,
				Name: name,
				Path: manifest.Shaders[name],
				Err:  err,
			}
		}
		a.shaders[name] = shader
	}
	return a, nil
}

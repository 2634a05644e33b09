package assets

import "fmt"

type Kind int

const (
	KindMesh Kind = iota
	KindTexture
	KindShader
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindTexture:
		return "texture"
	case KindShader:
		return "shader"
	}
	return "asset"
}

// Error is returned for any asset that cannot be read, decoded or compiled.
type Error struct {
	Kind Kind
	Name string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("loading %s %s (%s): %v", e.Kind, e.Name, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

package client

import (
	"snowman/assets"
	"snowman/render"
	"snowman/world"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawTriangles takes uint16 indices.
const maxBatchVertices = 65535 / 3 * 3

var (
	skyZenith  = []float32{0.32, 0.42, 0.62}
	skyHorizon = []float32{0.80, 0.85, 0.92}
)

// Renderer paints the scene back to front, one DrawTriangles call per run of
// triangles sharing a texture.
type Renderer struct {
	assets    *Assets
	triangles []render.Triangle
	vertices  []ebiten.Vertex
	indices   []uint16
	texture   string
}

func NewRenderer(a *Assets) *Renderer {
	return &Renderer{assets: a}
}

func (r *Renderer) RenderSky(screen *ebiten.Image) {
	w, h := screen.Size()
	opt := &ebiten.DrawRectShaderOptions{}
	opt.Uniforms = map[string]interface{}{
		"Zenith":  skyZenith,
		"Horizon": skyHorizon,
		"Height":  float32(h),
	}
	screen.DrawRectShader(w, h, r.assets.Shader(assets.Sky), opt)
}

func (r *Renderer) RenderScene(screen *ebiten.Image, s *world.Scene) {
	w, h := screen.Size()
	frame := render.NewFrame(&s.Camera, w, h)
	r.triangles = frame.Project(render.Models(s), r.assets.meshes, r.triangles)

	for _, tri := range r.triangles {
		if tri.Texture != r.texture || len(r.vertices)+3 > maxBatchVertices {
			r.flush(screen)
			r.texture = tri.Texture
		}
		tw, th := r.assets.Image(tri.Texture).Size()
		for _, v := range tri.Vertices {
			r.indices = append(r.indices, uint16(len(r.vertices)))
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   v.U * float32(tw),
				SrcY:   (1 - v.V) * float32(th),
				ColorR: tri.Shade,
				ColorG: tri.Shade,
				ColorB: tri.Shade,
				ColorA: 1,
			})
		}
	}
	r.flush(screen)
}

func (r *Renderer) flush(screen *ebiten.Image) {
	if len(r.vertices) > 0 {
		opt := &ebiten.DrawTrianglesOptions{
			Address: ebiten.AddressRepeat,
			Filter:  ebiten.FilterLinear,
		}
		screen.DrawTriangles(r.vertices, r.indices, r.assets.Image(r.texture), opt)
	}
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}

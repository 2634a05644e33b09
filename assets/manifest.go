package assets

// Names shared by the loader and the renderer.
const (
	Ground     = "ground"
	Tree       = "tree"
	Snowman    = "snowman"
	SnowmanArm = "snowman_arm"
	Snowball   = "snowball"
	Sky        = "sky"
)

// Manifest maps asset names to paths inside the asset file system.
type Manifest struct {
	Meshes   map[string]string
	Textures map[string]string
	Shaders  map[string]string
}

var DefaultManifest = Manifest{
	Meshes: map[string]string{
		Ground:     "meshes/ground.obj",
		Tree:       "meshes/tree.obj",
		Snowman:    "meshes/snowman.obj",
		SnowmanArm: "meshes/snowman_arm.obj",
		Snowball:   "meshes/snowball.obj",
	},
	Textures: map[string]string{
		Ground:     "textures/ground_snow.png",
		Tree:       "textures/pine_tree.png",
		Snowman:    "textures/snowman.png",
		SnowmanArm: "textures/arm.png",
	},
	Shaders: map[string]string{
		Sky: "shaders/sky.kage",
	},
}

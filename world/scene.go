package world

// Scene is the whole diorama. It is created once and mutated in place by Step and
// ApplyCommand.
type Scene struct {
	Camera   Camera
	Snowmen  []Snowman
	Trees    []Obstacle
	Ground   Obstacle
	Snowball Snowball
	Flee     Flee
	Frame    int64

	// per-step scratch, indexed like Snowmen
	previous []Vector
	away     []Vector
}

func NewScene() *Scene {
	s := &Scene{
		Camera: Camera{
			Actor: newActor(Vector{0, 2, -15}),
			Up:    Vector{0, 1, 0},
		},
		Snowmen: []Snowman{
			{Actor: newActor(Vector{-10, 0, -10}), Mobile: true, Spin: SnowmanSpin},
			{Actor: newActor(Vector{-5, 0, -10}), Mobile: true},
			{Actor: newActor(Vector{10, 0, 10})},
		},
		Trees: []Obstacle{
			{Actor: newActor(Vector{5, 0, -4}), Scale: 2},
			{Actor: newActor(Vector{7, 0, 8}), Scale: 2.5},
			{Actor: newActor(Vector{-5, 0, 8}), Scale: 2.5},
		},
		Ground:   Obstacle{Actor: newActor(Vector{0, 1.5, 0}), Scale: 15},
		Snowball: Snowball{Actor: newActor(Vector{})},
	}
	s.Snowball.hold(&s.Camera)
	return s
}

func (s *Scene) triggerFlee() {
	s.Flee.Active = true
	for i := range s.Snowmen {
		if s.Snowmen[i].Mobile {
			s.Snowmen[i].Mode = ModeFlee
		}
	}
}

func (s *Scene) snowmanBlocked(p Vector) bool {
	for i := range s.Trees {
		if FlatDistance(p, s.Trees[i].Position) < SnowmanTreeClearance {
			return true
		}
	}
	return outOfBounds(p)
}

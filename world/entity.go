package world

import "github.com/segmentio/ksuid"

type Actor struct {
	ID       string
	Position Vector
}

func newActor(position Vector) Actor {
	return Actor{
		ID:       ksuid.New().String(),
		Position: position,
	}
}

// Obstacle is a fixed scene object. Only its position takes part in collisions.
type Obstacle struct {
	Actor
	Scale float64
}

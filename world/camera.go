package world

import (
	"log"
	"math"
)

type Camera struct {
	Actor
	Yaw         float64 // radians about the vertical axis, 0 looks down +Z
	Up          Vector
	DebugOffset float64
}

// Forward is the horizontal view direction derived from Yaw.
func (c *Camera) Forward() Vector {
	return Vector{math.Sin(c.Yaw), 0, math.Cos(c.Yaw)}
}

// Command is a single player input.
type Command int

const (
	MoveForward Command = iota
	MoveBackward
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	Raise
	Fire
)

var commandNames = [...]string{
	MoveForward:  "forward",
	MoveBackward: "backward",
	StrafeLeft:   "strafe-left",
	StrafeRight:  "strafe-right",
	TurnLeft:     "turn-left",
	TurnRight:    "turn-right",
	Raise:        "raise",
	Fire:         "fire",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// ApplyCommand runs one player command against the scene. A camera move that ends
// too close to a snowman or a tree, or outside the world, is undone.
func ApplyCommand(s *Scene, cmd Command) {
	c := &s.Camera
	previous := c.Position
	forward := c.Forward()

	switch cmd {
	case MoveForward:
		c.Position = c.Position.Add(forward)
	case MoveBackward:
		c.Position = c.Position.Sub(forward)
	case StrafeLeft:
		c.Position = c.Position.Add(leftOf(forward))
	case StrafeRight:
		c.Position = c.Position.Add(rightOf(forward))
	case TurnLeft:
		c.Yaw += CameraTurnStep
	case TurnRight:
		c.Yaw -= CameraTurnStep
	case Raise:
		c.DebugOffset += RaiseStep
	case Fire:
		if s.Snowball.Throw(forward) {
			log.Printf("snowball %s thrown from (%0.2f, %0.2f)", s.Snowball.ID, s.Snowball.Position.X(), s.Snowball.Position.Z())
		}
	}

	if s.cameraBlocked(c.Position) {
		c.Position = previous
	}
}

func (s *Scene) cameraBlocked(p Vector) bool {
	for i := range s.Snowmen {
		if FlatDistance(p, s.Snowmen[i].Position) < CameraSnowmanClearance {
			return true
		}
	}
	for i := range s.Trees {
		if FlatDistance(p, s.Trees[i].Position) < CameraTreeClearance {
			return true
		}
	}
	return outOfBounds(p)
}

package world

import "log"

type SnowballState int

const (
	SnowballHeld SnowballState = iota
	SnowballInFlight
)

func (s SnowballState) String() string {
	if s == SnowballInFlight {
		return "in-flight"
	}
	return "held"
}

type Snowball struct {
	Actor
	State     SnowballState
	Direction Vector
	Gravity   float64
	Impact    Vector // where the last flight ended on a snowman or tree
	Impacted  bool
}

// Throw launches the snowball along forward. It reports false and changes nothing
// when a snowball is already in the air.
func (b *Snowball) Throw(forward Vector) bool {
	if b.State == SnowballInFlight {
		return false
	}
	b.Direction = normalize(forward).Mul(SnowballSpeed)
	b.Gravity = 0
	b.State = SnowballInFlight
	return true
}

// hold places the snowball just below the camera and to the right of the view.
func (b *Snowball) hold(c *Camera) {
	b.Position = c.Position.Add(heldOffset(c.Forward()))
}

func heldOffset(forward Vector) Vector {
	side := rightOf(forward).Mul(HeldSide)
	return Vector{side.X(), -HeldDrop, side.Z()}
}

// integrate runs one semi-implicit Euler step: gravity grows, bends the direction
// down, then the position follows the new direction. The position therefore uses
// the updated direction, so even the first frame in flight curves down.
func (b *Snowball) integrate() {
	b.Gravity += SnowballGravityStep
	b.Direction[1] -= b.Gravity
	b.Position = b.Position.Add(b.Direction.Mul(SnowballStepScale))
}

func (b *Snowball) strike() {
	b.State = SnowballHeld
	b.Impact = b.Position
	b.Impacted = true
}

func updateSnowball(s *Scene) {
	b := &s.Snowball
	if b.State == SnowballInFlight {
		collideSnowball(s)
	}

	switch b.State {
	case SnowballInFlight:
		if b.Position.Y() > SnowballFloor {
			b.integrate()
			return
		}
		b.State = SnowballHeld
		b.hold(&s.Camera)
	case SnowballHeld:
		b.hold(&s.Camera)
	}
}

func collideSnowball(s *Scene) {
	b := &s.Snowball
	for i := range s.Snowmen {
		m := &s.Snowmen[i]
		if FlatDistance(b.Position, m.Position) < SnowballSnowmanHitRadius {
			b.strike()
			log.Printf("snowball hit snowman %s at x: %f z: %f", m.ID, b.Impact.X(), b.Impact.Z())
			s.triggerFlee()
			return
		}
	}
	for i := range s.Trees {
		t := &s.Trees[i]
		if FlatDistance(b.Position, t.Position) < SnowballTreeHitRadius {
			b.strike()
			log.Printf("snowball hit tree %s at x: %f z: %f", t.ID, b.Impact.X(), b.Impact.Z())
			return
		}
	}
}

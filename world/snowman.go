package world

// Mode is the behaviour a mobile snowman follows for the current frame.
type Mode int

const (
	ModePatrol Mode = iota
	ModeAvoid
	ModeFlee
)

func (m Mode) String() string {
	switch m {
	case ModePatrol:
		return "patrol"
	case ModeAvoid:
		return "avoid"
	case ModeFlee:
		return "flee"
	}
	return "unknown"
}

// resolveMode picks the mode for one frame. Fleeing wins over everything, and a
// camera inside AvoidRadius wins over patrolling. Nothing carries over between frames.
func resolveMode(fleeing bool, cameraDistance float64) Mode {
	switch {
	case fleeing:
		return ModeFlee
	case cameraDistance < AvoidRadius:
		return ModeAvoid
	default:
		return ModePatrol
	}
}

type PatrolDirection int

const (
	PatrolForward PatrolDirection = iota
	PatrolBackward
)

// Patrol walks a snowman back and forth along Z. Marched tracks progress along the
// path and keeps counting even when a step is rejected by the collision guard.
type Patrol struct {
	Direction PatrolDirection
	Marched   float64
}

func (p *Patrol) advance(position Vector) Vector {
	switch p.Direction {
	case PatrolForward:
		p.Marched += PatrolMarch
		position[2] += PatrolStep
	case PatrolBackward:
		p.Marched -= PatrolMarch
		position[2] -= PatrolStep
	}
	if p.Marched > PatrolLength {
		p.Direction = PatrolBackward
	}
	if p.Marched < 0 {
		p.Direction = PatrolForward
	}
	return position
}

type SwingDirection int

const (
	SwingRaise SwingDirection = iota
	SwingLower
)

// ArmSwing is a triangle wave between 0 and ArmSwingMax degrees.
type ArmSwing struct {
	Angle     float64
	Direction SwingDirection
}

func (a *ArmSwing) advance() {
	switch a.Direction {
	case SwingRaise:
		a.Angle += ArmSwingStep
		if a.Angle >= ArmSwingMax {
			a.Angle = ArmSwingMax
			a.Direction = SwingLower
		}
	case SwingLower:
		a.Angle -= ArmSwingStep
		if a.Angle <= 0 {
			a.Angle = 0
			a.Direction = SwingRaise
		}
	}
}

// Pose returns the right and left arm rotations about X, in degrees. Fleeing
// snowmen throw their arms up.
func (a ArmSwing) Pose(fleeing bool) (right, left float64) {
	if fleeing {
		return FleeRightArmBase - a.Angle, FleeLeftArmBase + a.Angle
	}
	return ArmSwingMax - a.Angle, a.Angle
}

type Snowman struct {
	Actor
	Mobile bool
	Yaw    float64 // degrees
	Spin   float64 // degrees added to Yaw every frame
	Arm    ArmSwing
	Patrol Patrol
	Mode   Mode
}

func (m *Snowman) Fleeing() bool {
	return m.Mode == ModeFlee
}

func steerSnowman(m *Snowman, away Vector) {
	switch m.Mode {
	case ModeAvoid:
		m.Position = m.Position.Add(away.Mul(AvoidStep))
	case ModePatrol:
		m.Position = m.Patrol.advance(m.Position)
	}
}

// Flee is shared by every mobile snowman: a hit on any snowman scares them all.
type Flee struct {
	Active  bool
	Elapsed float64
}

func (f *Flee) advance() {
	f.Elapsed += FleeTimeStep
	if f.Elapsed > FleeDuration {
		f.Active = false
		f.Elapsed = 0
	}
}

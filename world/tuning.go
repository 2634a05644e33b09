package world

import "time"

const (
	WorldBound = 50.0 // |x| and |z| limit for the camera and snowmen

	CameraTurnStep         = 0.03 // radians per turn command
	CameraSnowmanClearance = 2.0
	CameraTreeClearance    = 3.0
	RaiseStep              = 0.1

	SnowmanTreeClearance = 3.0
	AvoidRadius          = 10.0
	AvoidStep            = 0.003
	FleeStep             = 0.01 // faster than AvoidStep
	FleeTimeStep         = 0.0002
	FleeDuration         = 1.0
	PatrolStep           = 0.002 // distance moved along Z per frame
	PatrolMarch          = 0.001 // accumulator change per frame
	PatrolLength         = 10.0
	SnowmanSpin          = 0.1 // degrees per frame

	ArmSwingStep     = 0.1 // degrees per frame
	ArmSwingMax      = 90.0
	FleeRightArmBase = 330.0
	FleeLeftArmBase  = 240.0

	SnowballSpeed            = 5.0
	SnowballStepScale        = 0.01
	SnowballGravityStep      = 0.000004
	SnowballFloor            = -1.0
	SnowballSnowmanHitRadius = 1.0
	SnowballTreeHitRadius    = 1.5
	HeldSide                 = 0.4
	HeldDrop                 = 0.3

	MaxFrameDelta = 30 * time.Millisecond
)

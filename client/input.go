package client

import (
	"snowman/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	repeatDelay    = 30 // ticks
	repeatInterval = 3
)

var keyCommands = []struct {
	key     ebiten.Key
	command world.Command
}{
	{ebiten.KeyW, world.MoveForward},
	{ebiten.KeyS, world.MoveBackward},
	{ebiten.KeyA, world.StrafeLeft},
	{ebiten.KeyD, world.StrafeRight},
	{ebiten.KeyQ, world.TurnLeft},
	{ebiten.KeyE, world.TurnRight},
	{ebiten.KeyI, world.Raise},
	{ebiten.KeyR, world.Fire},
}

// repeatingKeyPressed is true on the first tick of a press and then every
// repeatInterval ticks once the key has been held for repeatDelay ticks.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *Game) handleKeysPressed() {
	for _, k := range keyCommands {
		if repeatingKeyPressed(k.key) {
			world.ApplyCommand(g.scene, k.command)
		}
	}
}

package client

import (
	"errors"
	"fmt"
	"snowman/assets"
	"snowman/utils"
	"snowman/world"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ErrQuit ends the game loop when the player presses Escape.
var ErrQuit = errors.New("quit")

type Game struct {
	*Assets
	scene     *world.Scene
	renderer  *Renderer
	clock     *world.FrameClock
	stepper   *world.Stepper
	showDebug bool
}

func NewGame(a *Assets, cfg *utils.Config) *Game {
	return &Game{
		Assets:    a,
		scene:     world.NewScene(),
		renderer:  NewRenderer(a),
		clock:     world.NewFrameClock(),
		stepper:   world.NewStepper(cfg.Simulation.StepsPerSecond),
		showDebug: cfg.Game.ShowDebug,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	g.handleKeysPressed()
	for n := g.stepper.Steps(g.clock.Tick()); n > 0; n-- {
		world.Step(g.scene)
	}
	return nil
}

func (g *Game) debugString() string {
	s := g.scene
	c := &s.Camera
	lines := []string{
		fmt.Sprintf("Version: %s, TPS: %0.02f, FPS: %0.02f", strings.TrimSpace(assets.Version), ebiten.CurrentTPS(), ebiten.CurrentFPS()),
		fmt.Sprintf("Frame: %d, Camera: (%0.1f,%0.1f,%0.1f) +%0.1f", s.Frame, c.Position.X(), c.Position.Y(), c.Position.Z(), c.DebugOffset),
		fmt.Sprintf("Snowball: %s", s.Snowball.State),
	}
	for i := range s.Snowmen {
		m := &s.Snowmen[i]
		if m.Mobile {
			lines = append(lines, fmt.Sprintf("%s: %s (%0.1f,%0.1f)", m.ID, m.Mode, m.Position.X(), m.Position.Z()))
		}
	}
	return strings.Join(lines, "\n")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.RenderSky(screen)
	g.renderer.RenderScene(screen, g.scene)
	if g.showDebug {
		ebitenutil.DebugPrint(screen, g.debugString())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

// Package ebiten provides an Ebiten-based 2D graphical renderer.
// Tiles are drawn as flat colored rects; the HUD uses the debug text face.
package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/entities"
	"selvaoscura/pkg/game/level"
	"selvaoscura/pkg/game/state"
)

// Tile and HUD geometry
const (
	tileSize  = 24
	hudHeight = 96
)

// Tile palette
var (
	colorWall       = color.RGBA{0x2b, 0x2b, 0x33, 0xff}
	colorPath       = color.RGBA{0x11, 0x11, 0x14, 0xff}
	colorStart      = color.RGBA{0x2e, 0x4a, 0x2e, 0xff}
	colorExitSealed = color.RGBA{0x6b, 0x1f, 0x1f, 0xff}
	colorExitOpen   = color.RGBA{0x2f, 0x8f, 0x2f, 0xff}
	colorPlayer     = color.RGBA{0x4f, 0xd0, 0x4f, 0xff}
	colorGuide      = color.RGBA{0x40, 0xc0, 0xd0, 0xff}
	colorFragment   = color.RGBA{0xe0, 0xc0, 0x30, 0xff}
	colorHUD        = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// keyDirections maps movement keys to world directions
var keyDirections = map[ebiten.Key]world.Direction{
	ebiten.KeyArrowUp:    world.North,
	ebiten.KeyArrowDown:  world.South,
	ebiten.KeyArrowRight: world.East,
	ebiten.KeyArrowLeft:  world.West,
	ebiten.KeyW:          world.North,
	ebiten.KeyS:          world.South,
	ebiten.KeyD:          world.East,
	ebiten.KeyA:          world.West,
}

// GameRunner implements ebiten.Game over a live session. Input handling
// lives in Update because Ebiten owns the loop; AfterMove gives the caller
// a hook for autosaving without this package knowing about persistence.
type GameRunner struct {
	game *state.Game

	// AfterMove is called after each accepted move and, with force set,
	// after level transitions. May be nil.
	AfterMove func(force bool)

	// pendingLine holds the dialogue line currently shown; movement is
	// paused until it is dismissed.
	pendingLine string
	hasLine     bool
}

// Run opens the window and drives the session until the player quits or wins
func Run(g *state.Game, afterMove func(force bool)) error {
	r := &GameRunner{game: g, AfterMove: afterMove}
	w, h := r.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Selva Oscura")
	return ebiten.RunGame(r)
}

// Update handles one tick of input and game logic
func (r *GameRunner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if r.AfterMove != nil {
			r.AfterMove(true)
		}
		return ebiten.Termination
	}

	if r.game.Won {
		return nil
	}

	// Pull the next dialogue line when none is showing
	if !r.hasLine {
		if e, ok := r.game.Dialogue.Advance(); ok {
			r.pendingLine = e.Text
			r.hasLine = true
		}
	}

	// A showing line blocks everything except its dismissal
	if r.hasLine {
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			r.hasLine = false
		}
		return nil
	}

	for key, dir := range keyDirections {
		if inpututil.IsKeyJustPressed(key) {
			if r.game.AttemptMove(dir) && r.AfterMove != nil {
				r.AfterMove(false)
			}
			break
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if r.game.AdvanceLevel() && r.AfterMove != nil {
			r.AfterMove(true)
		}
	}

	return nil
}

// tileColor picks the fill for one map position
func (r *GameRunner) tileColor(x, y int) color.Color {
	g := r.game
	if e := g.Maze.Entities.At(x, y); e != nil {
		switch e.Kind {
		case entities.Guide:
			return colorGuide
		case entities.Fragment:
			return colorFragment
		}
	}
	switch g.Maze.Grid.CellAt(x, y) {
	case world.Wall:
		return colorWall
	case world.Start:
		return colorStart
	case world.Exit:
		if g.Tracker.Status().ExitUnlocked {
			return colorExitOpen
		}
		return colorExitSealed
	default:
		return colorPath
	}
}

// Draw renders the map tiles and the HUD
func (r *GameRunner) Draw(screen *ebiten.Image) {
	g := r.game
	grid := g.Maze.Grid

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			vector.DrawFilledRect(screen,
				float32(x*tileSize), float32(y*tileSize),
				tileSize, tileSize, r.tileColor(x, y), false)
		}
	}

	px := float32(g.Player.X*tileSize) + tileSize/4
	py := float32(g.Player.Y*tileSize) + tileSize/4
	vector.DrawFilledRect(screen, px, py, tileSize/2, tileSize/2, colorPlayer, false)

	r.drawHUD(screen)
}

// drawHUD renders the status line, messages, and any pending dialogue
func (r *GameRunner) drawHUD(screen *ebiten.Image) {
	g := r.game
	top := g.Maze.Grid.Height() * tileSize

	vector.DrawFilledRect(screen, 0, float32(top),
		float32(g.Maze.Grid.Width()*tileSize), hudHeight, colorHUD, false)

	status := g.Tracker.Status()
	line := fmt.Sprintf("%s %d: %s   %s %d/%d",
		gotext.Get("CIRCLE"), g.Level, level.Name(g.Level),
		gotext.Get("STATUS_FRAGMENTS"), status.FragmentsCollected, status.TotalFragments)
	if status.ExitUnlocked {
		line += "   " + gotext.Get("STATUS_EXIT_OPEN")
	}
	ebitenutil.DebugPrintAt(screen, line, 4, top+4)

	if g.Won {
		ebitenutil.DebugPrintAt(screen, gotext.Get("MSG_VICTORY"), 4, top+20)
		return
	}

	if r.hasLine {
		ebitenutil.DebugPrintAt(screen, r.pendingLine, 4, top+20)
		ebitenutil.DebugPrintAt(screen, gotext.Get("HINT_DISMISS"), 4, top+36)
		return
	}

	for i, msg := range g.Messages {
		ebitenutil.DebugPrintAt(screen, msg, 4, top+20+i*14)
	}
}

// Layout reports the logical screen size, sized to the current maze
func (r *GameRunner) Layout(outsideWidth, outsideHeight int) (int, int) {
	grid := r.game.Maze.Grid
	return grid.Width() * tileSize, grid.Height()*tileSize + hudHeight
}

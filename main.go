package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"selvaoscura/pkg/engine/input"
	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/renderer"
	rendererebiten "selvaoscura/pkg/game/renderer/ebiten"
	"selvaoscura/pkg/game/renderer/tui"
	"selvaoscura/pkg/game/save"
	"selvaoscura/pkg/game/state"
)

func initGotext() {
	gotext.Configure("po", "en_GB", "default")
}

// defaultSaveDir places saves under the user config dir, falling back to
// the working directory when the platform does not report one.
func defaultSaveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".selvaoscura"
	}
	return filepath.Join(base, "selvaoscura")
}

// loadOrNewGame restores the stored session when one exists and is
// readable; anything else starts a fresh descent.
func loadOrNewGame(store *save.Store, seed int64, fresh bool) *state.Game {
	if fresh {
		if err := store.Clear(); err != nil {
			log.WithError(err).Warn("could not clear previous save")
		}
	} else {
		st, err := store.Load()
		if errors.Is(err, save.ErrVersionMismatch) {
			log.Warn("save is from an incompatible version, starting fresh")
		} else if err != nil {
			log.WithError(err).Warn("could not load save, starting fresh")
		}
		if st != nil {
			log.WithFields(log.Fields{
				"level": st.CurrentLevel,
			}).Info("restored session from save")
			return state.RestoreGame(st)
		}
	}

	if seed == 0 {
		if settings, err := store.LoadSettings(); err == nil && settings != nil {
			seed = settings.Seed
		}
	}

	g := state.NewGame(seed)
	if err := store.SaveSettings(&save.Settings{Seed: g.Seed}); err != nil {
		log.WithError(err).Warn("could not persist settings")
	}
	return g
}

// commandDirection maps movement commands to world directions
func commandDirection(cmd input.Command) (world.Direction, bool) {
	switch cmd {
	case input.CmdMoveNorth:
		return world.North, true
	case input.CmdMoveSouth:
		return world.South, true
	case input.CmdMoveEast:
		return world.East, true
	case input.CmdMoveWest:
		return world.West, true
	}
	return world.North, false
}

func main() {
	startLevel := flag.Int("level", 1, "starting level number (for developer testing)")
	rendererName := flag.String("renderer", "tui", "renderer backend: tui or ebiten")
	saveDir := flag.String("savedir", defaultSaveDir(), "directory for save files")
	seed := flag.Int64("seed", 0, "session seed (0 = random)")
	newGame := flag.Bool("newgame", false, "discard any existing save and start fresh")
	flag.Parse()

	initGotext()

	store := save.NewStore(save.NewFileStorage(*saveDir), save.Options{})

	g := loadOrNewGame(store, *seed, *newGame)
	if *startLevel > 1 {
		g.JumpToLevel(*startLevel)
	}

	autoSave := func(force bool) {
		if _, err := store.AutoSave(g.Snapshot(), force); err != nil {
			log.WithError(err).Warn("autosave failed")
		}
	}

	switch strings.ToLower(*rendererName) {
	case "ebiten":
		if err := rendererebiten.Run(g, autoSave); err != nil {
			log.Fatalf("renderer exited: %v", err)
		}
	case "tui":
		renderer.SetRenderer(tui.New())
		renderer.Init()
		runTUI(g, autoSave)
	default:
		log.Fatalf("unknown renderer: %s", *rendererName)
	}
}

// runTUI drives the synchronous terminal loop: render, read one key, apply
func runTUI(g *state.Game, autoSave func(force bool)) {
	for {
		renderer.RenderFrame(g)

		if g.Won {
			renderer.ShowMessage(gotext.Get("MSG_VICTORY"))
			autoSave(true)
			return
		}

		key := input.ReadKey()
		switch key {
		case "h", "j", "k", "l":
			g.NavStyle = state.NavStyleVim
		case "arrow_up", "arrow_down", "arrow_left", "arrow_right":
			g.NavStyle = state.NavStyleArrows
		}

		cmd := input.MapToCommand(key, true)
		switch cmd {
		case input.CmdMoveNorth, input.CmdMoveSouth, input.CmdMoveEast, input.CmdMoveWest:
			dir, _ := commandDirection(cmd)
			if g.AttemptMove(dir) {
				autoSave(false)
			}
		case input.CmdDescend:
			if g.AdvanceLevel() {
				autoSave(true)
			} else {
				g.AddMessage(gotext.Get("MSG_EXIT_STILL_SEALED"))
			}
		case input.CmdAdvance:
			// RenderFrame pops the next dialogue line on its own
		case input.CmdHelp:
			g.AddMessage(gotext.Get("HELP_TEXT"))
		case input.CmdQuit:
			autoSave(true)
			fmt.Println(gotext.Get("GOODBYE"))
			return
		}
	}
}

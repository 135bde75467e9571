// Package state holds the live session: current level, player position, the
// active maze, objective tracking, and narrative progress. It also bridges
// the live session to and from the plain save snapshot.
package state

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/dialogue"
	"selvaoscura/pkg/game/entities"
	"selvaoscura/pkg/game/level"
	"selvaoscura/pkg/game/maze"
	"selvaoscura/pkg/game/objectives"
	"selvaoscura/pkg/game/save"
)

// NavStyle represents the navigation key style
type NavStyle int

// Navigation styles
const (
	NavStyleArrows NavStyle = iota
	NavStyleVim
)

// Dialogue catalog keys fired by session events
const (
	dialogueGuideMet     = "DIALOGUE_GUIDE_MET"
	dialogueExitUnlocked = "DIALOGUE_EXIT_UNLOCKED"
	dialogueDescended    = "DIALOGUE_DESCENDED"
	dialogueVictory      = "DIALOGUE_VICTORY"
)

// Game represents one play session across the descent
type Game struct {
	Level  int
	Player world.Point

	Maze     *maze.Maze
	Tracker  *objectives.Tracker
	Dialogue *dialogue.Controller

	Messages []string

	NavStyle NavStyle

	// Seed is the session seed; level n carves with Seed+n so every level
	// regenerates identically from the save.
	Seed int64

	// Won flips when the player leaves the final level
	Won bool

	CompletedLevels []int
	DeathCount      int

	// playTimeBase carries accumulated seconds from previous runs of this
	// session; startedAt marks when the current run began.
	playTimeBase int64
	startedAt    time.Time
}

// NewGame starts a fresh session at level 1 with the given seed.
// A zero seed picks the current time.
func NewGame(seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		Level:     1,
		Dialogue:  dialogue.NewController(),
		Seed:      seed,
		startedAt: time.Now(),
	}
	g.buildLevel()
	return g
}

// buildLevel regenerates the maze for the current level and resets the
// player to its start.
func (g *Game) buildLevel() {
	diff := level.ForLevel(g.Level)
	g.Maze = maze.Generate(maze.Config{
		Width:         diff.Width,
		Height:        diff.Height,
		WantsGuide:    diff.WantsGuide,
		FragmentCount: diff.FragmentCount,
		Seed:          g.Seed + int64(g.Level),
	})
	g.Tracker = objectives.NewTracker(g.Maze.Entities, diff.GuideRequired)
	g.Player = g.Maze.Grid.StartPos()

	log.WithFields(log.Fields{
		"level":     g.Level,
		"width":     diff.Width,
		"height":    diff.Height,
		"fragments": g.Maze.Entities.FragmentCount(),
	}).Info("level built")
}

// JumpToLevel rebuilds the session at the given level, for developer
// testing. Objective progress on the current level is discarded.
func (g *Game) JumpToLevel(n int) {
	if n < 1 {
		n = 1
	}
	if n > level.TotalLevels {
		n = level.TotalLevels
	}
	g.Level = n
	g.buildLevel()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AttemptMove tries to step the player one cell in the given direction.
// Blocked moves leave all state untouched and return false. Accepted moves
// run the objective check at the new position and queue any resulting
// dialogue and messages.
func (g *Game) AttemptMove(dir world.Direction) bool {
	target := g.Player.Step(dir)
	if !g.Maze.Grid.IsWalkable(target.X, target.Y) {
		return false
	}
	g.Player = target

	res := g.Tracker.CheckObjectives(target)
	for _, e := range res.Collected {
		switch e.Kind {
		case entities.Guide:
			g.Dialogue.Enqueue(dialogueGuideMet)
			g.AddMessage(gotext.Get("MSG_GUIDE_FOUND"))
		case entities.Fragment:
			status := g.Tracker.Status()
			g.AddMessage(fmt.Sprintf(gotext.Get("MSG_FRAGMENT_COLLECTED"),
				status.FragmentsCollected, status.TotalFragments))
		}
	}
	if res.StatusChanged && g.Tracker.Status().ExitUnlocked {
		g.Dialogue.Enqueue(dialogueExitUnlocked)
		g.AddMessage(gotext.Get("MSG_EXIT_UNLOCKED"))
	}
	return true
}

// AtUnlockedExit reports whether the player may leave the level right now
func (g *Game) AtUnlockedExit() bool {
	return g.Tracker.CanExitLevel(g.Player, g.Maze.Grid.ExitPos())
}

// AdvanceLevel moves the session to the next level, or marks the session won
// when the current level is the last. Returns false when the exit gate does
// not allow leaving yet.
func (g *Game) AdvanceLevel() bool {
	if !g.AtUnlockedExit() {
		return false
	}

	g.CompletedLevels = append(g.CompletedLevels, g.Level)
	if level.IsFinalLevel(g.Level) {
		g.Won = true
		g.Dialogue.Enqueue(dialogueVictory)
		return true
	}

	g.Level = level.NextLevel(g.Level)
	g.buildLevel()
	g.ClearMessages()
	g.Dialogue.Enqueue(dialogueDescended)
	g.AddMessage(fmt.Sprintf(gotext.Get("MSG_ENTERED_LEVEL"), g.Level, level.Name(g.Level)))
	return true
}

// PlayTimeSeconds returns total accumulated play time including this run
func (g *Game) PlayTimeSeconds() int64 {
	return g.playTimeBase + int64(time.Since(g.startedAt).Seconds())
}

// navStyleNames maps NavStyle to its persisted form
var navStyleNames = map[NavStyle]string{
	NavStyleArrows: "arrows",
	NavStyleVim:    "vim",
}

// Snapshot converts the live session into its plain persistable form
func (g *Game) Snapshot() *save.GameState {
	objSnap := g.Tracker.Export()

	st := &save.GameState{
		CurrentLevel:   g.Level,
		PlayerPosition: g.Player,
		CollectedItems: objSnap.CollectedFragmentIDs,
		ObjectivesCompleted: save.ObjectiveFlags{
			GuideFound:         objSnap.GuideFound,
			FragmentsCollected: len(objSnap.CollectedFragmentIDs),
			ExitUnlocked:       objSnap.ExitUnlocked,
		},
		GameSettings: save.Settings{
			Seed:     g.Seed,
			NavStyle: navStyleNames[g.NavStyle],
		},
		GameStats: save.Stats{
			PlayTime:      g.PlayTimeSeconds(),
			DeathCount:    g.DeathCount,
			DialoguesSeen: g.Dialogue.SeenKeys(),
		},
		LevelProgress: append([]int{}, g.CompletedLevels...),
	}
	return st
}

// RestoreGame rebuilds a live session from a loaded snapshot. The maze is
// regenerated from the persisted seed and level, then the objective and
// dialogue state is replayed onto it.
func RestoreGame(st *save.GameState) *Game {
	g := &Game{
		Level:           st.CurrentLevel,
		Dialogue:        dialogue.NewController(),
		Seed:            st.GameSettings.Seed,
		CompletedLevels: append([]int{}, st.LevelProgress...),
		DeathCount:      st.GameStats.DeathCount,
		playTimeBase:    st.GameStats.PlayTime,
		startedAt:       time.Now(),
	}
	if st.GameSettings.NavStyle == "vim" {
		g.NavStyle = NavStyleVim
	}
	g.buildLevel()

	g.Tracker.Import(objectives.Snapshot{
		GuideFound:           st.ObjectivesCompleted.GuideFound,
		CollectedFragmentIDs: st.CollectedItems,
		ExitUnlocked:         st.ObjectivesCompleted.ExitUnlocked,
	})
	g.Dialogue.MarkSeen(st.GameStats.DialoguesSeen)

	// A saved position off the walkable area means the maze no longer
	// matches the save; fall back to the start rather than trap the player.
	if g.Maze.Grid.IsWalkable(st.PlayerPosition.X, st.PlayerPosition.Y) {
		g.Player = st.PlayerPosition
	} else {
		log.WithFields(log.Fields{
			"x": st.PlayerPosition.X,
			"y": st.PlayerPosition.Y,
		}).Warn("saved position not walkable, resetting to level start")
		g.Player = g.Maze.Grid.StartPos()
	}

	return g
}

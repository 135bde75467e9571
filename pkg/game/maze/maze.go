// Package maze ties generation, solvability checking, repair, and entity
// placement into one pipeline. Every Maze returned by Generate satisfies the
// hard postcondition that the Exit is reachable from the Start.
package maze

import (
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"selvaoscura/pkg/engine/world"
	"selvaoscura/pkg/game/entities"
	"selvaoscura/pkg/game/generator"
)

// DefaultMaxAttempts bounds carve-and-check retries before falling back to
// the deterministic path repairer.
const DefaultMaxAttempts = 3

// Config enumerates every recognized maze option and its default
type Config struct {
	Width         int
	Height        int
	WantsGuide    bool
	FragmentCount int

	// Seed drives both carving and entity placement; zero picks a
	// time-based seed.
	Seed int64

	// MaxAttempts caps regeneration when a carve comes out unsolvable;
	// zero or negative means DefaultMaxAttempts.
	MaxAttempts int
}

// Maze owns the grid and the entity collection for one active level
type Maze struct {
	Grid     *world.Grid
	Entities *entities.Set
}

// Generate builds a solvable, populated maze. Unsolvable carves are retried
// up to MaxAttempts times with derived seeds and then force-repaired; the
// caller never sees an unsolvable maze.
func Generate(cfg Config) *Maze {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var grid *world.Grid
	solvable := false
	for i := 0; i < attempts; i++ {
		grid = generator.DefaultGenerator.Generate(cfg.Width, cfg.Height, seed+int64(i))
		if generator.IsSolvable(grid) {
			solvable = true
			break
		}
		log.WithFields(log.Fields{
			"attempt": i + 1,
			"width":   cfg.Width,
			"height":  cfg.Height,
		}).Warn("maze carve unsolvable, retrying")
	}

	if !solvable {
		log.WithFields(log.Fields{
			"width":  cfg.Width,
			"height": cfg.Height,
		}).Warn("maze unsolvable after retries, forcing repair corridor")
		generator.RepairPath(grid)
	}

	rng := rand.New(rand.NewSource(seed))
	ents := entities.Place(grid, entities.PlacementConfig{
		WantsGuide:    cfg.WantsGuide,
		FragmentCount: cfg.FragmentCount,
	}, rng)

	return &Maze{Grid: grid, Entities: ents}
}

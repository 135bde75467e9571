package entities

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"selvaoscura/pkg/engine/world"
)

// PlacementConfig enumerates every recognized placement option
type PlacementConfig struct {
	WantsGuide    bool
	FragmentCount int
}

// Place assigns entities to walkable cells of an already-validated grid.
// Start and Exit cells are reserved and never receive an entity. Placement is
// without replacement, so no two entities share a cell. The guide (if wanted)
// is placed first, then up to FragmentCount fragments with sequential IDs in
// placement order.
//
// Asking for more fragments than the pool can hold is a degraded outcome, not
// an error: as many as fit are placed and a warning is logged.
func Place(grid *world.Grid, cfg PlacementConfig, rng *rand.Rand) *Set {
	set := NewSet()

	reserved := mapset.New[world.Point]()
	reserved.Put(grid.StartPos())
	reserved.Put(grid.ExitPos())

	var pool []world.Point
	grid.ForEachCell(func(x, y int, t world.CellType) {
		p := world.Point{X: x, Y: y}
		if t.Walkable() && !reserved.Has(p) {
			pool = append(pool, p)
		}
	})

	if len(pool) == 0 {
		log.WithFields(log.Fields{
			"width":  grid.Width(),
			"height": grid.Height(),
		}).Warn("entity placement: no positions available")
		return set
	}

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if cfg.WantsGuide {
		p := pool[0]
		pool = pool[1:]
		set.add(&Entity{Kind: Guide, X: p.X, Y: p.Y})
	}

	count := cfg.FragmentCount
	if count > len(pool) {
		log.WithFields(log.Fields{
			"requested": cfg.FragmentCount,
			"available": len(pool),
		}).Warn("entity placement: fewer fragment positions than requested")
		count = len(pool)
	}

	for i := 0; i < count; i++ {
		p := pool[i]
		set.add(&Entity{Kind: Fragment, X: p.X, Y: p.Y, ID: i})
	}

	return set
}

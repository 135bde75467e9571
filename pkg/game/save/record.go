package save

import (
	"selvaoscura/pkg/engine/world"
)

// CurrentVersion is the save format version this build reads and writes.
// Loads require an exact match.
const CurrentVersion = "1.0.0"

// ObjectiveFlags is the persisted objective completion summary
type ObjectiveFlags struct {
	GuideFound         bool `json:"guideFound"`
	FragmentsCollected int  `json:"fragmentsCollected"`
	ExitUnlocked       bool `json:"exitUnlocked"`
}

// Settings holds session options that survive restarts. Seed drives maze
// regeneration: grids are never persisted, they are rebuilt from level+seed.
type Settings struct {
	Seed     int64  `json:"seed"`
	NavStyle string `json:"navStyle"`
}

// Stats accumulates session play statistics
type Stats struct {
	PlayTime      int64    `json:"playTime"` // seconds
	DeathCount    int      `json:"deathCount"`
	DialoguesSeen []string `json:"dialoguesSeen"`
}

// GameState is the serializable snapshot of a session. It is plain data:
// no live references, and never the raw grid.
type GameState struct {
	CurrentLevel        int            `json:"currentLevel"`
	PlayerPosition      world.Point    `json:"playerPosition"`
	CollectedItems      []int          `json:"collectedItems"` // fragment IDs
	ObjectivesCompleted ObjectiveFlags `json:"objectivesCompleted"`
	GameSettings        Settings       `json:"gameSettings"`
	GameStats           Stats          `json:"gameStats"`
	LevelProgress       []int          `json:"levelProgress"` // completed levels
}

// SaveRecord is the versioned envelope actually written to storage
type SaveRecord struct {
	Version   string    `json:"version"`
	Timestamp int64     `json:"timestamp"`
	Payload   GameState `json:"payload"`
}

// Validate checks a GameState for structural problems before it is written
// or after it is read. Returns nil when the state is acceptable.
func Validate(s *GameState) error {
	if s.CurrentLevel < 1 {
		return &ValidationError{Field: "currentLevel", Reason: "must be >= 1"}
	}
	if s.PlayerPosition.X < 0 || s.PlayerPosition.Y < 0 {
		return &ValidationError{Field: "playerPosition", Reason: "must be non-negative"}
	}
	if s.ObjectivesCompleted.FragmentsCollected < 0 {
		return &ValidationError{Field: "objectivesCompleted.fragmentsCollected", Reason: "must be non-negative"}
	}
	if s.ObjectivesCompleted.FragmentsCollected != len(s.CollectedItems) {
		return &ValidationError{Field: "collectedItems", Reason: "count disagrees with objectivesCompleted.fragmentsCollected"}
	}
	seen := make(map[int]bool, len(s.CollectedItems))
	for _, id := range s.CollectedItems {
		if id < 0 {
			return &ValidationError{Field: "collectedItems", Reason: "contains a negative fragment id"}
		}
		if seen[id] {
			return &ValidationError{Field: "collectedItems", Reason: "contains a duplicate fragment id"}
		}
		seen[id] = true
	}
	if s.GameStats.PlayTime < 0 {
		return &ValidationError{Field: "gameStats.playTime", Reason: "must be non-negative"}
	}
	if s.GameStats.DeathCount < 0 {
		return &ValidationError{Field: "gameStats.deathCount", Reason: "must be non-negative"}
	}
	return nil
}

// normalize ensures slices are never nil after a load
func (s *GameState) normalize() {
	if s.CollectedItems == nil {
		s.CollectedItems = []int{}
	}
	if s.GameStats.DialoguesSeen == nil {
		s.GameStats.DialoguesSeen = []string{}
	}
	if s.LevelProgress == nil {
		s.LevelProgress = []int{}
	}
}

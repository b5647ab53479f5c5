package metrics

import (
	"time"

	"amazons/searcher"
)

// AgentConfig describes one player of an experiment.
type AgentConfig struct {
	ID       int
	Random   bool   // Plays uniformly random moves instead of searching
	Seed     uint64 // Random agents only
	MaxDepth int    // 0 keeps the adaptive depth uncapped
	Strict   bool   // Disables the static-score shortcut
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	searcher.SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty if the turn limit was reached
	Forfeit        bool   // The loser failed to produce a legal move
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing White
	Agent2 int // AgentConfig.ID playing Black
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

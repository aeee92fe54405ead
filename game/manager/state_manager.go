package manager

import (
	"time"

	"github.com/google/uuid"
)

// StateManager tracks the round in progress and the session's finished
// rounds.
type StateManager struct {
	stats   *GameStats
	current RoundRecord
	now     func() time.Time
}

func NewStateManager(now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	return &StateManager{
		stats: NewGameStats(),
		now:   now,
	}
}

// StartRound opens a new round and returns its id.
func (sm *StateManager) StartRound() string {
	sm.current = RoundRecord{
		ID:        uuid.New().String(),
		StartTime: sm.now(),
	}
	return sm.current.ID
}

// Tick counts one simulation step in the current round.
func (sm *StateManager) Tick() {
	sm.current.Ticks++
}

// EndRound closes the current round with the snake's final length.
func (sm *StateManager) EndRound(length int) RoundRecord {
	sm.current.EndTime = sm.now()
	sm.current.Length = length
	sm.stats.AddRound(sm.current)
	return sm.current
}

func (sm *StateManager) GetStats() *GameStats {
	return sm.stats
}

func (sm *StateManager) GetHighScore() int {
	return sm.stats.GetMaxLength()
}

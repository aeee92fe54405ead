package manager

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// RoundRecord is one finished round. Records only live for the session.
type RoundRecord struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Ticks     int
}

// Duration is the wall-clock time the round ran for.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats aggregates finished rounds in memory.
type GameStats struct {
	Rounds []RoundRecord
}

func NewGameStats() *GameStats {
	return &GameStats{
		Rounds: make([]RoundRecord, 0),
	}
}

// AddRound appends a finished round.
func (s *GameStats) AddRound(r RoundRecord) {
	s.Rounds = append(s.Rounds, r)
}

// GetRoundsPlayed returns the number of finished rounds.
func (s *GameStats) GetRoundsPlayed() int {
	return len(s.Rounds)
}

// GetMaxLength returns the longest final length, or 0 with no rounds.
func (s *GameStats) GetMaxLength() int {
	best := 0
	for _, r := range s.Rounds {
		if r.Length > best {
			best = r.Length
		}
	}
	return best
}

// GetAverageLength returns the mean final length.
func (s *GameStats) GetAverageLength() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	return stat.Mean(s.lengths(), nil)
}

// GetMedianLength returns the empirical median final length (the lower
// middle value for an even count).
func (s *GameStats) GetMedianLength() float64 {
	if len(s.Rounds) == 0 {
		return 0
	}
	lengths := s.lengths()
	sort.Float64s(lengths)
	return stat.Quantile(0.5, stat.Empirical, lengths, nil)
}

// GetAverageDuration returns the mean round duration.
func (s *GameStats) GetAverageDuration() time.Duration {
	if len(s.Rounds) == 0 {
		return 0
	}
	secs := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		secs[i] = r.Duration().Seconds()
	}
	return time.Duration(stat.Mean(secs, nil) * float64(time.Second))
}

func (s *GameStats) lengths() []float64 {
	out := make([]float64, len(s.Rounds))
	for i, r := range s.Rounds {
		out[i] = float64(r.Length)
	}
	return out
}

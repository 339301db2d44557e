package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// New creates the strategy for the given difficulty with its default
// tuning. A nil rng falls back to a time-seeded source.
func New(difficulty Difficulty, rng *rand.Rand) (Strategy, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch difficulty {
	case DifficultyEasy:
		return NewEasyBot(rng, DefaultEasyTuning), nil
	case DifficultyMedium:
		return NewMediumBot(rng, DefaultMediumTuning), nil
	case DifficultyHard:
		return NewHardBot(rng, DefaultHardTuning), nil
	default:
		return nil, fmt.Errorf("unknown difficulty: %d", difficulty)
	}
}

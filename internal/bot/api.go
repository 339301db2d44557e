package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"durak/internal/domain"
)

// CardPlay names a card together with its current hand index, so the
// caller can apply it through the index-based GameState mutators.
type CardPlay struct {
	HandIndex int
	Card      domain.Card
}

// Strategy is the decision policy for one computer seat. The move
// methods distinguish "no move possible" (nil) from "decline to act"
// (empty non-nil slice): a nil defense means the seat must take, an
// empty attack means the seat stops adding cards.
type Strategy interface {
	ShouldTakeCards(g *domain.GameState, seat int) bool
	MakeAttackMove(g *domain.GameState, seat int) []CardPlay
	MakeDefenseMove(g *domain.GameState, seat int) []CardPlay
}

// Difficulty selects which strategy a computer seat plays with.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty: %q", s)
	}
}

// chance draws one uniform sample and compares it against p. Every
// probabilistic branch in the strategies goes through here, so a test
// can pin the branch by setting its tuning probability to 0 or 1.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

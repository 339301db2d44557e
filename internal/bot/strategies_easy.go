package bot

import (
	"math/rand"

	"durak/internal/bot/internal"
	"durak/internal/domain"
)

// EasyBot plays the weakest tier: it never plans ahead, spends the
// cheapest card that works, and takes the table half the time even when
// it could defend.
type EasyBot struct {
	rng    *rand.Rand
	tuning EasyTuning
}

func NewEasyBot(rng *rand.Rand, tuning EasyTuning) *EasyBot {
	return &EasyBot{rng: rng, tuning: tuning}
}

// ShouldTakeCards takes whenever any single undefended attack has no
// beating card in hand. With every attack beatable it still takes on a
// coin flip.
func (b *EasyBot) ShouldTakeCards(g *domain.GameState, seat int) bool {
	hand := g.Player(seat).Hand()
	trump, _ := g.TrumpSuit()
	for _, attack := range internal.Undefended(g.Table()) {
		if len(internal.Beaters(hand, attack, trump)) == 0 {
			return true
		}
	}
	return chance(b.rng, b.tuning.RandomTakeChance)
}

// MakeAttackMove plays the first hand card matching a rank already on
// the table, or, with nothing to match, the single lowest-value card
// where trumps always count above non-trumps.
func (b *EasyBot) MakeAttackMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	if len(hand) == 0 {
		return nil
	}
	trump, _ := g.TrumpSuit()
	table := g.Table()
	if len(table) > 0 {
		ranks := internal.TableRanks(table)
		for i, c := range hand {
			if ranks[c.Rank] {
				return []CardPlay{{HandIndex: i, Card: c}}
			}
		}
	}
	bestIdx := 0
	for i, c := range hand {
		if internal.CardWeight(c, trump) < internal.CardWeight(hand[bestIdx], trump) {
			bestIdx = i
		}
	}
	return []CardPlay{{HandIndex: bestIdx, Card: hand[bestIdx]}}
}

// MakeDefenseMove answers the first undefended attack with the lowest
// same-suit non-trump, then the lowest trump that beats it. Trumps are
// never conserved.
func (b *EasyBot) MakeDefenseMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	trump, _ := g.TrumpSuit()
	attack, ok := internal.FirstUndefended(g.Table())
	if !ok {
		return nil
	}
	var sameSuit []domain.IndexedCard
	for i, c := range hand {
		if c.Suit == attack.Suit && c.Suit != trump && c.Rank > attack.Rank {
			sameSuit = append(sameSuit, domain.IndexedCard{Index: i, Card: c})
		}
	}
	if pick, ok := internal.MinByRank(sameSuit); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	var trumps []domain.IndexedCard
	for i, c := range hand {
		if c.Suit != trump {
			continue
		}
		if attack.Suit != trump || c.Rank > attack.Rank {
			trumps = append(trumps, domain.IndexedCard{Index: i, Card: c})
		}
	}
	if pick, ok := internal.MinByRank(trumps); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	return nil
}

package bot

import (
	"math/rand"

	"durak/internal/bot/internal"
	"durak/internal/domain"
)

// MediumBot counts the trumps a defense would cost before committing to
// it, mixes passes into its defense, and sometimes declines to pile on
// as the attacker.
type MediumBot struct {
	rng    *rand.Rand
	tuning MediumTuning
}

func NewMediumBot(rng *rand.Rand, tuning MediumTuning) *MediumBot {
	return &MediumBot{rng: rng, tuning: tuning}
}

// ShouldTakeCards surveys every undefended attack before spending a
// card. An unbeatable attack forces a take. Any attack answerable only
// by high trumps (Jack and above) forces a take. Two or more attacks
// answerable only by trumps trigger a probabilistic take, and four or
// more attacks are always too many to face.
func (b *MediumBot) ShouldTakeCards(g *domain.GameState, seat int) bool {
	hand := g.Player(seat).Hand()
	trump, _ := g.TrumpSuit()
	undefended := internal.Undefended(g.Table())
	if len(undefended) == 0 {
		return false
	}
	trumpsNeeded := 0
	highTrumpsNeeded := 0
	for _, attack := range undefended {
		beaters := internal.Beaters(hand, attack, trump)
		if len(beaters) == 0 {
			return true
		}
		onlyTrumps := len(internal.FilterTrump(beaters, trump, false)) == 0
		if onlyTrumps {
			trumpsNeeded++
			onlyHigh := true
			for _, ic := range internal.FilterTrump(beaters, trump, true) {
				if ic.Card.Rank < domain.Jack {
					onlyHigh = false
					break
				}
			}
			if onlyHigh {
				highTrumpsNeeded++
			}
		}
	}
	if highTrumpsNeeded > 0 {
		return true
	}
	if trumpsNeeded >= 2 && chance(b.rng, b.tuning.TrumpSaveTakeChance) {
		return true
	}
	if len(undefended) >= 4 {
		return true
	}
	return false
}

// MakeAttackMove leads from the lowest non-trump rank pair when one
// exists, else the lowest non-trump, spending trumps only when nothing
// else is left. On follow-ups it may stop adding outright, prefers the
// lowest matching non-trump, and only feeds a matching trump in when
// the defender has already burned one.
func (b *MediumBot) MakeAttackMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	if len(hand) == 0 {
		return nil
	}
	trump, _ := g.TrumpSuit()
	table := g.Table()

	if len(table) > 0 {
		if chance(b.rng, b.tuning.StopAddingChance) {
			return []CardPlay{}
		}
		ranks := internal.TableRanks(table)
		var matching []domain.IndexedCard
		for i, c := range hand {
			if ranks[c.Rank] {
				matching = append(matching, domain.IndexedCard{Index: i, Card: c})
			}
		}
		if pick, ok := internal.MinByRank(internal.FilterTrump(matching, trump, false)); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
		if internal.DefenderUsedTrump(table, trump) && chance(b.rng, b.tuning.AddTrumpChance) {
			if pick, ok := internal.MinByRank(internal.FilterTrump(matching, trump, true)); ok {
				return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
			}
		}
		return []CardPlay{}
	}

	// Initial attack. Pairs of a rank make good leads because matching
	// follow-ups stay available.
	groups := internal.RankGroups(hand)
	pairLead := domain.IndexedCard{}
	pairFound := false
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		nonTrumps := internal.FilterTrump(group, trump, false)
		if len(nonTrumps) == 0 {
			continue
		}
		pick, _ := internal.MinByRank(nonTrumps)
		if !pairFound || pick.Card.Rank < pairLead.Card.Rank {
			pairLead = pick
			pairFound = true
		}
	}
	if pairFound {
		return []CardPlay{{HandIndex: pairLead.Index, Card: pairLead.Card}}
	}
	all := indexed(hand)
	if pick, ok := internal.MinByRank(internal.FilterTrump(all, trump, false)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	trumps := internal.FilterTrump(all, trump, true)
	if len(trumps) > 1 {
		pick, _ := internal.MinByRank(trumps)
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	pick, _ := internal.MinByRank(all)
	return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
}

// MakeDefenseMove sometimes passes when a same-rank card allows it,
// spends a trump early against high-value attacks, and otherwise beats
// with the lowest non-trump before falling back to the lowest trump.
func (b *MediumBot) MakeDefenseMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	trump, _ := g.TrumpSuit()
	attack, ok := internal.FirstUndefended(g.Table())
	if !ok {
		return nil
	}
	passes := internal.PassCandidates(hand, attack)
	if len(passes) > 0 && chance(b.rng, b.tuning.PassChance) {
		if pick, ok := internal.MinByWeight(passes, trump); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
	}
	beaters := internal.Beaters(hand, attack, trump)
	if len(beaters) == 0 {
		return nil
	}
	highValue := attack.Rank >= domain.Jack ||
		(attack.Suit == trump && attack.Rank >= domain.Ten)
	if highValue && chance(b.rng, b.tuning.TrumpHighValueChance) {
		if pick, ok := internal.MinByRank(internal.FilterTrump(beaters, trump, true)); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
	}
	if pick, ok := internal.MinByRank(internal.FilterTrump(beaters, trump, false)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	if pick, ok := internal.MinByRank(internal.FilterTrump(beaters, trump, true)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	return nil
}

func indexed(hand []domain.Card) []domain.IndexedCard {
	out := make([]domain.IndexedCard, len(hand))
	for i, c := range hand {
		out[i] = domain.IndexedCard{Index: i, Card: c}
	}
	return out
}

package bot

import (
	"math/rand"

	"durak/internal/bot/internal"
	"durak/internal/domain"
)

// HardBot weighs the full cost of defending against the cost of picking
// up, tracks the discard pile to find exhausted ranks in the defender's
// hand, and adjusts for the endgame once the deck runs low.
type HardBot struct {
	rng    *rand.Rand
	tuning HardTuning
}

func NewHardBot(rng *rand.Rand, tuning HardTuning) *HardBot {
	return &HardBot{rng: rng, tuning: tuning}
}

// ShouldTakeCards builds a greedy defense plan for the whole table and
// decides from its cost. Unbeatable attacks force a take. In the
// endgame, spending the last high trumps held forces a take while high
// trumps remain unaccounted for. A big pickup with a cheap defense
// available is refused, as is any take when a nearly-empty opponent
// could be finished off. Otherwise a take happens when the plan is
// expensive or the pickup is small enough to absorb.
func (b *HardBot) ShouldTakeCards(g *domain.GameState, seat int) bool {
	player := g.Player(seat)
	hand := player.Hand()
	trump, _ := g.TrumpSuit()
	table := g.Table()
	undefended := internal.Undefended(table)
	if len(undefended) == 0 {
		return false
	}
	for _, attack := range undefended {
		if len(internal.Beaters(hand, attack, trump)) == 0 {
			return true
		}
	}
	cost, ok := internal.DefensePlan(hand, undefended, trump)
	if !ok {
		return true
	}

	isEndgame := g.DeckEmpty() || g.DeckRemaining() <= 2
	if isEndgame && cost.HighTrumps > 0 {
		highTrumpsPlayed := internal.HighTrumps(g.DiscardPile(), trump)
		holdingLast := cost.HighTrumps >= internal.HighTrumps(hand, trump)
		if holdingLast && highTrumpsPlayed < 4 {
			return true
		}
	}

	cardsToTake := len(table)
	newHandSize := player.HandSize() + cardsToTake
	if newHandSize > domain.HandTarget+2 && cost.Valuable < 2 {
		return false
	}

	opponentSeat := g.CurrentAttacker()
	if seat != g.CurrentDefender() {
		opponentSeat = g.CurrentDefender()
	}
	if isEndgame && g.Player(opponentSeat).HandSize() <= 2 && cost.Valuable <= 1 {
		return false
	}

	return cost.Valuable >= 2 ||
		(cost.HighTrumps >= 1 && isEndgame) ||
		(cardsToTake <= 2 && newHandSize <= domain.HandTarget)
}

// MakeAttackMove follows up by targeting ranks the defender is probably
// out of (two or more copies already in the discard pile or on the
// table), feeds trumps to a defender who already spent one, and knows
// when to stop piling on. Initial endgame attacks against a short hand
// lead with a forcing card; otherwise it leads from the cheapest rank
// pair, then the cheapest non-trump.
func (b *HardBot) MakeAttackMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	if len(hand) == 0 {
		return nil
	}
	trump, _ := g.TrumpSuit()
	table := g.Table()
	defender := g.Player(g.CurrentDefender())

	if len(table) > 0 {
		return b.followUpAttack(g, hand, trump, table)
	}

	if g.DeckEmpty() && defender.HandSize() <= 2 {
		var forcing []domain.IndexedCard
		for i, c := range hand {
			if (c.Suit == trump && c.Rank >= domain.Ten) || c.Rank >= domain.Ace {
				forcing = append(forcing, domain.IndexedCard{Index: i, Card: c})
			}
		}
		if pick, ok := internal.MinByRank(forcing); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
	}

	// Lead from a rank pair, skipping pairs made only of high trumps.
	groups := internal.RankGroups(hand)
	var pairLead domain.IndexedCard
	pairFound := false
	var pairRank domain.Rank
	for rank, group := range groups {
		if len(group) < 2 {
			continue
		}
		allHighTrumps := true
		for _, ic := range group {
			if !(ic.Card.Suit == trump && ic.Card.Rank >= domain.Jack) {
				allHighTrumps = false
				break
			}
		}
		if allHighTrumps {
			continue
		}
		if pairFound && rank >= pairRank {
			continue
		}
		pick, ok := internal.MinByRank(internal.FilterTrump(group, trump, false))
		if !ok {
			pick, _ = internal.MinByRank(group)
		}
		pairLead = pick
		pairRank = rank
		pairFound = true
	}
	if pairFound {
		return []CardPlay{{HandIndex: pairLead.Index, Card: pairLead.Card}}
	}

	all := indexed(hand)
	if pick, ok := internal.MinByRank(internal.FilterTrump(all, trump, false)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	if pick, ok := internal.MinByRank(internal.FilterTrump(all, trump, true)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	pick, _ := internal.MinByRank(all)
	return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
}

func (b *HardBot) followUpAttack(g *domain.GameState, hand []domain.Card, trump domain.Suit, table []domain.TableEntry) []CardPlay {
	ranks := internal.TableRanks(table)
	counts := internal.RankCounts(g.DiscardPile(), table)
	defenderUsedTrump := internal.DefenderUsedTrump(table, trump)

	// Ranks with two or more copies already out are likely holes in the
	// defender's hand.
	weakRanks := make(map[domain.Rank]bool)
	for rank, count := range counts {
		if ranks[rank] && count >= 2 {
			weakRanks[rank] = true
		}
	}
	if len(weakRanks) > 0 {
		var candidates []domain.IndexedCard
		for i, c := range hand {
			if weakRanks[c.Rank] && !(c.Suit == trump && c.Rank >= domain.Jack) {
				candidates = append(candidates, domain.IndexedCard{Index: i, Card: c})
			}
		}
		if pick, ok := internal.MinByWeight(candidates, trump); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
	}

	var matching []domain.IndexedCard
	for i, c := range hand {
		if ranks[c.Rank] {
			matching = append(matching, domain.IndexedCard{Index: i, Card: c})
		}
	}
	if len(matching) > 0 {
		if defenderUsedTrump {
			matchingTrumps := internal.FilterTrump(matching, trump, true)
			if len(matchingTrumps) > 0 && chance(b.rng, b.tuning.AddTrumpChance) {
				pick, _ := internal.MinByRank(matchingTrumps)
				return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
			}
		}
		if pick, ok := internal.MinByRank(internal.FilterTrump(matching, trump, false)); ok {
			return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
		}
		pick, _ := internal.MinByRank(matching)
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}

	easyDefense := true
	for _, e := range table {
		if !e.Defended {
			easyDefense = false
			break
		}
	}
	if easyDefense || len(table) >= 3 {
		stopChance := b.tuning.CrowdedStopChance
		if easyDefense {
			stopChance = b.tuning.EasyDefenseStopChance
		}
		if chance(b.rng, stopChance) {
			return []CardPlay{}
		}
	}
	return []CardPlay{}
}

// MakeDefenseMove passes aggressively with safe cards (never a high
// trump or an Ace), passes with anything as a last resort when no card
// beats the attack, and otherwise beats as cheaply as possible. In the
// endgame it keeps high trumps back against low-value attacks.
func (b *HardBot) MakeDefenseMove(g *domain.GameState, seat int) []CardPlay {
	hand := g.Player(seat).Hand()
	trump, _ := g.TrumpSuit()
	isEndgame := g.DeckEmpty()
	attack, ok := internal.FirstUndefended(g.Table())
	if !ok {
		return nil
	}

	passes := internal.PassCandidates(hand, attack)
	if len(passes) > 0 {
		var safe []domain.IndexedCard
		for _, ic := range passes {
			if ic.Card.Suit == trump && ic.Card.Rank >= domain.Jack {
				continue
			}
			if ic.Card.Rank == domain.Ace {
				continue
			}
			safe = append(safe, ic)
		}
		if len(safe) > 0 && chance(b.rng, b.tuning.PassChance) {
			if pick, ok := internal.MinByWeight(safe, trump); ok {
				return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
			}
		}
		if len(safe) == 0 {
			if pick, ok := internal.MinByRank(passes); ok {
				return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
			}
		}
	}

	beaters := internal.Beaters(hand, attack, trump)
	if len(beaters) == 0 {
		if len(passes) > 0 {
			return []CardPlay{{HandIndex: passes[0].Index, Card: passes[0].Card}}
		}
		return nil
	}
	if pick, ok := internal.MinByRank(internal.FilterTrump(beaters, trump, false)); ok {
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	trumpBeaters := internal.FilterTrump(beaters, trump, true)
	if len(trumpBeaters) > 0 {
		if isEndgame {
			highValueAttack := attack.Rank >= domain.Queen ||
				(attack.Suit == trump && attack.Rank >= domain.Ten)
			if !highValueAttack {
				var low []domain.IndexedCard
				for _, ic := range trumpBeaters {
					if ic.Card.Rank < domain.Jack {
						low = append(low, ic)
					}
				}
				if pick, ok := internal.MinByRank(low); ok {
					return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
				}
			}
		}
		pick, _ := internal.MinByRank(trumpBeaters)
		return []CardPlay{{HandIndex: pick.Index, Card: pick.Card}}
	}
	return nil
}

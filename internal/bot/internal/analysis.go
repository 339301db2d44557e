// Package internal holds hand and table analysis shared by the bot
// strategy tiers.
package internal

import "durak/internal/domain"

// CardWeight orders cards for spending decisions. Trumps land in a band
// above every non-trump, so minimizing weight always spends non-trumps
// first.
func CardWeight(c domain.Card, trump domain.Suit) int {
	if c.Suit == trump {
		return 100 + int(c.Rank)
	}
	return int(c.Rank)
}

// Undefended returns the attack cards on the table that have no defense
// yet, in table order.
func Undefended(table []domain.TableEntry) []domain.Card {
	var out []domain.Card
	for _, e := range table {
		if !e.Defended {
			out = append(out, e.Attack)
		}
	}
	return out
}

// FirstUndefended returns the first table entry lacking a defense.
func FirstUndefended(table []domain.TableEntry) (domain.Card, bool) {
	for _, e := range table {
		if !e.Defended {
			return e.Attack, true
		}
	}
	return domain.Card{}, false
}

// TableRanks collects every rank showing on the table, attacks and
// defenses both. Follow-up attacks are restricted to these ranks.
func TableRanks(table []domain.TableEntry) map[domain.Rank]bool {
	ranks := make(map[domain.Rank]bool)
	for _, e := range table {
		ranks[e.Attack.Rank] = true
		if e.Defended {
			ranks[e.Defense.Rank] = true
		}
	}
	return ranks
}

// RankCounts tallies how many cards of each rank have been seen in the
// discard pile and on the table.
func RankCounts(discard []domain.Card, table []domain.TableEntry) map[domain.Rank]int {
	counts := make(map[domain.Rank]int)
	for _, c := range discard {
		counts[c.Rank]++
	}
	for _, e := range table {
		counts[e.Attack.Rank]++
		if e.Defended {
			counts[e.Defense.Rank]++
		}
	}
	return counts
}

// DefenderUsedTrump reports whether any defense on the table is a
// trump.
func DefenderUsedTrump(table []domain.TableEntry, trump domain.Suit) bool {
	for _, e := range table {
		if e.Defended && e.Defense.Suit == trump {
			return true
		}
	}
	return false
}

// PassCandidates returns the hand cards sharing the attack's rank, in
// hand order.
func PassCandidates(hand []domain.Card, attack domain.Card) []domain.IndexedCard {
	var out []domain.IndexedCard
	for i, c := range hand {
		if c.CanPass(attack) {
			out = append(out, domain.IndexedCard{Index: i, Card: c})
		}
	}
	return out
}

// Beaters returns the hand cards able to beat the attack, in hand
// order.
func Beaters(hand []domain.Card, attack domain.Card, trump domain.Suit) []domain.IndexedCard {
	var out []domain.IndexedCard
	for i, c := range hand {
		if c.CanBeat(attack, trump) {
			out = append(out, domain.IndexedCard{Index: i, Card: c})
		}
	}
	return out
}

// MinByRank returns the first entry with the lowest rank.
func MinByRank(cards []domain.IndexedCard) (domain.IndexedCard, bool) {
	if len(cards) == 0 {
		return domain.IndexedCard{}, false
	}
	best := cards[0]
	for _, ic := range cards[1:] {
		if ic.Card.Rank < best.Card.Rank {
			best = ic
		}
	}
	return best, true
}

// MinByWeight returns the first entry with the lowest CardWeight.
func MinByWeight(cards []domain.IndexedCard, trump domain.Suit) (domain.IndexedCard, bool) {
	if len(cards) == 0 {
		return domain.IndexedCard{}, false
	}
	best := cards[0]
	for _, ic := range cards[1:] {
		if CardWeight(ic.Card, trump) < CardWeight(best.Card, trump) {
			best = ic
		}
	}
	return best, true
}

// FilterTrump splits wanted on whether the card's suit is the trump.
func FilterTrump(cards []domain.IndexedCard, trump domain.Suit, wantTrump bool) []domain.IndexedCard {
	var out []domain.IndexedCard
	for _, ic := range cards {
		if (ic.Card.Suit == trump) == wantTrump {
			out = append(out, ic)
		}
	}
	return out
}

// RankGroups indexes the hand by rank, preserving hand order within a
// group.
func RankGroups(hand []domain.Card) map[domain.Rank][]domain.IndexedCard {
	groups := make(map[domain.Rank][]domain.IndexedCard)
	for i, c := range hand {
		groups[c.Rank] = append(groups[c.Rank], domain.IndexedCard{Index: i, Card: c})
	}
	return groups
}

// PlanCost is what a full greedy defense of the current table would
// spend: valuable cards (any trump, or any card Jack and above) and
// high trumps (trump Jack and above).
type PlanCost struct {
	Valuable   int
	HighTrumps int
}

// DefensePlan greedily assigns one beating card per undefended attack,
// cheapest same-suit card first and cheapest trump only when forced,
// never reusing a card. ok is false when some attack cannot be covered
// by the cards left unassigned.
func DefensePlan(hand []domain.Card, undefended []domain.Card, trump domain.Suit) (PlanCost, bool) {
	var cost PlanCost
	used := make(map[int]bool)
	for _, attack := range undefended {
		var candidates []domain.IndexedCard
		for i, c := range hand {
			if !used[i] && c.CanBeat(attack, trump) {
				candidates = append(candidates, domain.IndexedCard{Index: i, Card: c})
			}
		}
		if len(candidates) == 0 {
			return cost, false
		}
		if pick, ok := MinByRank(FilterTrump(candidates, trump, false)); ok {
			used[pick.Index] = true
			if pick.Card.Rank >= domain.Jack {
				cost.Valuable++
			}
			continue
		}
		pick, _ := MinByRank(FilterTrump(candidates, trump, true))
		used[pick.Index] = true
		cost.Valuable++
		if pick.Card.Rank >= domain.Jack {
			cost.HighTrumps++
		}
	}
	return cost, true
}

// HighTrumps counts the trump cards of rank Jack and above.
func HighTrumps(cards []domain.Card, trump domain.Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == trump && c.Rank >= domain.Jack {
			n++
		}
	}
	return n
}

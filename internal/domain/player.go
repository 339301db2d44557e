package domain

import (
	"sort"

	"github.com/google/uuid"
)

// PlayerType distinguishes human seats from computer-controlled ones.
type PlayerType int

const (
	Human PlayerType = iota
	Computer
)

func (t PlayerType) String() string {
	if t == Computer {
		return "computer"
	}
	return "human"
}

// Player holds the per-seat state: an identity, a type tag, and a hand
// kept sorted by suit then rank after every mutation.
type Player struct {
	ID   uuid.UUID
	Name string
	Type PlayerType
	hand []Card
}

// NewPlayer creates a player with an empty hand and a fresh identity.
func NewPlayer(name string, playerType PlayerType) *Player {
	return &Player{
		ID:   uuid.New(),
		Name: name,
		Type: playerType,
	}
}

// Hand returns the player's cards in sorted order. Callers must not
// mutate the returned slice.
func (p *Player) Hand() []Card {
	return p.hand
}

func (p *Player) HandSize() int {
	return len(p.hand)
}

func (p *Player) HandEmpty() bool {
	return len(p.hand) == 0
}

// AddCards appends cards to the hand and restores the sorted-hand
// invariant. Sorting is a display and determinism convenience, not a
// game rule.
func (p *Player) AddCards(cards []Card) {
	p.hand = append(p.hand, cards...)
	p.sortHand()
}

func (p *Player) sortHand() {
	sort.Slice(p.hand, func(i, j int) bool {
		if p.hand[i].Suit != p.hand[j].Suit {
			return p.hand[i].Suit < p.hand[j].Suit
		}
		return p.hand[i].Rank < p.hand[j].Rank
	})
}

// RemoveCard removes and returns the card at the given hand index.
// An out-of-range index is a caller-contract violation: callers are
// expected to bounds-check against HandSize first.
func (p *Player) RemoveCard(index int) (Card, error) {
	if index < 0 || index >= len(p.hand) {
		return Card{}, ErrInvalidCardIndex
	}
	card := p.hand[index]
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	return card, nil
}

// LowestTrump returns the hand index and value of the lowest-ranked
// trump card, or false if the hand holds no trump.
func (p *Player) LowestTrump(trump Suit) (int, Card, bool) {
	bestIdx := -1
	var best Card
	for i, c := range p.hand {
		if c.Suit != trump {
			continue
		}
		if bestIdx == -1 || c.Rank < best.Rank {
			bestIdx, best = i, c
		}
	}
	if bestIdx == -1 {
		return 0, Card{}, false
	}
	return bestIdx, best, true
}

// ValidDefenses returns every (index, card) in hand that beats the
// attacking card under the given trump suit.
func (p *Player) ValidDefenses(attack Card, trump Suit) []IndexedCard {
	var out []IndexedCard
	for i, c := range p.hand {
		if c.CanBeat(attack, trump) {
			out = append(out, IndexedCard{Index: i, Card: c})
		}
	}
	return out
}

// LowestCard returns the minimum-rank card in hand (ties broken by suit
// order), or false for an empty hand.
func (p *Player) LowestCard() (int, Card, bool) {
	if len(p.hand) == 0 {
		return 0, Card{}, false
	}
	bestIdx := 0
	for i, c := range p.hand {
		best := p.hand[bestIdx]
		if c.Rank < best.Rank || (c.Rank == best.Rank && c.Suit < best.Suit) {
			bestIdx = i
		}
	}
	return bestIdx, p.hand[bestIdx], true
}

// IndexedCard pairs a card with its position in a hand.
type IndexedCard struct {
	Index int
	Card  Card
}

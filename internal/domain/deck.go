package domain

import "math/rand"

// DeckSize is the number of cards in a full Durak deck.
const DeckSize = 36

// Deck owns the undealt card sequence and the resolved trump suit.
// The trump suit is unset until Shuffle fixes it from the bottom card;
// it never changes for the life of a hand.
type Deck struct {
	cards []Card
	trump *Suit
}

// NewDeck returns an unshuffled 36-card deck with no trump resolved.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits() {
		for _, r := range Ranks() {
			cards = append(cards, Card{Suit: s, Rank: r})
		}
	}
	return &Deck{cards: cards}
}

// Shuffle randomizes the deck order with the provided source and fixes
// the trump suit from the new bottom card. Must be called before Deal.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	if len(d.cards) > 0 {
		trump := d.cards[len(d.cards)-1].Suit
		d.trump = &trump
	}
}

// Deal removes and returns up to n cards from the top of the deck.
// Returning fewer than n cards is a normal near-end-of-game occurrence,
// not an error.
func (d *Deck) Deal(n int) []Card {
	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		if len(d.cards) == 0 {
			break
		}
		hand = append(hand, d.cards[len(d.cards)-1])
		d.cards = d.cards[:len(d.cards)-1]
	}
	return hand
}

// TrumpSuit returns the resolved trump suit, or false before Shuffle.
func (d *Deck) TrumpSuit() (Suit, bool) {
	if d.trump == nil {
		return 0, false
	}
	return *d.trump, true
}

// BottomCard returns the card that fixed the trump suit, if any remain.
func (d *Deck) BottomCard() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

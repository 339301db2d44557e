package domain

import "fmt"

// Suit is one of the four card suits. The zero value is Clubs.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists all suits in deck-building order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	}
	return "?"
}

// IsRed reports whether the suit renders red in a standard deck.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// Rank is a card rank in the 36-card deck. Ranks are totally ordered
// Six < Seven < ... < Ace; suits carry no order.
type Rank int

const (
	Six Rank = iota
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists all ranks in ascending order.
func Ranks() []Rank {
	return []Rank{Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

func (r Rank) String() string {
	switch r {
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return "?"
}

// Card is an immutable (suit, rank) value. Cards are copied freely and
// compared by value.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// CanBeat reports whether c beats other under the given trump suit.
//
// Same suit: strictly higher rank wins. Different suits: only a trump
// beats a non-trump, regardless of rank. A non-trump never beats a card
// of an unrelated suit.
func (c Card) CanBeat(other Card, trump Suit) bool {
	if c.Suit == other.Suit {
		return c.Rank > other.Rank
	}
	return c.Suit == trump
}

// CanPass reports whether c can redirect an attack on other to the next
// player (the podkidnoy pass): ranks must match, suits are irrelevant.
func (c Card) CanPass(other Card) bool {
	return c.Rank == other.Rank
}

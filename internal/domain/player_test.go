package domain

import "testing"

func TestPlayerAddCardsKeepsHandSorted(t *testing.T) {
	p := NewPlayer("test", Human)
	p.AddCards([]Card{
		{Suit: Spades, Rank: Ace},
		{Suit: Clubs, Rank: Nine},
		{Suit: Spades, Rank: Six},
		{Suit: Clubs, Rank: Six},
	})
	want := []Card{
		{Suit: Clubs, Rank: Six},
		{Suit: Clubs, Rank: Nine},
		{Suit: Spades, Rank: Six},
		{Suit: Spades, Rank: Ace},
	}
	hand := p.Hand()
	if len(hand) != len(want) {
		t.Fatalf("hand size %d, want %d", len(hand), len(want))
	}
	for i, c := range want {
		if hand[i] != c {
			t.Errorf("hand[%d] = %s, want %s", i, hand[i], c)
		}
	}
}

func TestPlayerRemoveCard(t *testing.T) {
	p := NewPlayer("test", Human)
	p.AddCards([]Card{
		{Suit: Hearts, Rank: Six},
		{Suit: Hearts, Rank: Ten},
	})
	card, err := p.RemoveCard(0)
	if err != nil {
		t.Fatalf("RemoveCard(0): %v", err)
	}
	if (card != Card{Suit: Hearts, Rank: Six}) {
		t.Errorf("removed %s, want 6♥", card)
	}
	if p.HandSize() != 1 {
		t.Errorf("hand size %d after removal, want 1", p.HandSize())
	}
	if _, err := p.RemoveCard(5); err != ErrInvalidCardIndex {
		t.Errorf("out-of-range removal error = %v, want ErrInvalidCardIndex", err)
	}
	if p.HandSize() != 1 {
		t.Errorf("failed removal changed hand size to %d", p.HandSize())
	}
}

func TestPlayerLowestTrump(t *testing.T) {
	p := NewPlayer("test", Computer)
	p.AddCards([]Card{
		{Suit: Hearts, Rank: Six},
		{Suit: Clubs, Rank: King},
		{Suit: Clubs, Rank: Eight},
	})
	idx, card, ok := p.LowestTrump(Clubs)
	if !ok {
		t.Fatal("LowestTrump found nothing")
	}
	if (card != Card{Suit: Clubs, Rank: Eight}) {
		t.Errorf("lowest trump = %s, want 8♣", card)
	}
	if p.Hand()[idx] != card {
		t.Errorf("index %d does not address %s", idx, card)
	}
	if _, _, ok := p.LowestTrump(Diamonds); ok {
		t.Error("found a trump in a hand without that suit")
	}
}

func TestPlayerValidDefenses(t *testing.T) {
	p := NewPlayer("test", Computer)
	p.AddCards([]Card{
		{Suit: Hearts, Rank: Six},
		{Suit: Hearts, Rank: Jack},
		{Suit: Clubs, Rank: Six},
		{Suit: Spades, Rank: Ace},
	})
	attack := Card{Suit: Hearts, Rank: Nine}
	defenses := p.ValidDefenses(attack, Clubs)
	if len(defenses) != 2 {
		t.Fatalf("got %d defenses, want 2 (J♥ and 6♣)", len(defenses))
	}
	for _, d := range defenses {
		if !d.Card.CanBeat(attack, Clubs) {
			t.Errorf("%s reported as defense but cannot beat %s", d.Card, attack)
		}
		if p.Hand()[d.Index] != d.Card {
			t.Errorf("index %d does not address %s", d.Index, d.Card)
		}
	}
}

func TestPlayerLowestCard(t *testing.T) {
	p := NewPlayer("test", Computer)
	p.AddCards([]Card{
		{Suit: Spades, Rank: Seven},
		{Suit: Hearts, Rank: Seven},
		{Suit: Diamonds, Rank: Ten},
	})
	_, card, ok := p.LowestCard()
	if !ok {
		t.Fatal("LowestCard on non-empty hand returned false")
	}
	// Rank ties break toward the lower suit.
	if (card != Card{Suit: Hearts, Rank: Seven}) {
		t.Errorf("lowest card = %s, want 7♥", card)
	}
	empty := NewPlayer("empty", Human)
	if _, _, ok := empty.LowestCard(); ok {
		t.Error("LowestCard on empty hand returned true")
	}
}

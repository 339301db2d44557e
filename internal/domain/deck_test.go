package domain

import (
	"math/rand"
	"testing"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if d.Remaining() != DeckSize {
		t.Fatalf("Remaining() = %d, want %d", d.Remaining(), DeckSize)
	}
	if _, ok := d.TrumpSuit(); ok {
		t.Error("trump resolved before shuffle")
	}
	seen := make(map[Card]bool)
	for d.Remaining() > 0 {
		for _, c := range d.Deal(6) {
			if seen[c] {
				t.Fatalf("duplicate card %s", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != DeckSize {
		t.Errorf("dealt %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDeckShuffleFixesTrump(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(7)))
	trump, ok := d.TrumpSuit()
	if !ok {
		t.Fatal("trump not resolved after shuffle")
	}
	bottom, ok := d.BottomCard()
	if !ok {
		t.Fatal("no bottom card in full deck")
	}
	if bottom.Suit != trump {
		t.Errorf("bottom card %s does not match trump %s", bottom, trump)
	}
}

func TestDeckDealShortens(t *testing.T) {
	d := NewDeck()
	d.Shuffle(rand.New(rand.NewSource(7)))
	hand := d.Deal(6)
	if len(hand) != 6 {
		t.Fatalf("Deal(6) returned %d cards", len(hand))
	}
	if d.Remaining() != DeckSize-6 {
		t.Errorf("Remaining() = %d, want %d", d.Remaining(), DeckSize-6)
	}
	// Near-exhausted deals return what is left without error.
	d.Deal(DeckSize - 6 - 2)
	short := d.Deal(6)
	if len(short) != 2 {
		t.Errorf("short deal returned %d cards, want 2", len(short))
	}
	if !d.IsEmpty() {
		t.Error("deck not empty after dealing everything")
	}
}

func TestDeckShuffleDeterministic(t *testing.T) {
	a := NewDeck()
	b := NewDeck()
	a.Shuffle(rand.New(rand.NewSource(42)))
	b.Shuffle(rand.New(rand.NewSource(42)))
	for a.Remaining() > 0 {
		ca, cb := a.Deal(1), b.Deal(1)
		if ca[0] != cb[0] {
			t.Fatalf("same seed produced different decks: %s vs %s", ca[0], cb[0])
		}
	}
}

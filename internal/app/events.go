package app

import "durak/internal/domain"

// EventKind identifies emitted game events for presentation layers.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventAttackPlayed  EventKind = "attack_played"
	EventDefensePlayed EventKind = "defense_played"
	EventAttackPassed  EventKind = "attack_passed"
	EventCardsTaken    EventKind = "cards_taken"
	EventAttacksBeaten EventKind = "attacks_beaten"
	EventCardsDrawn    EventKind = "cards_drawn"
	EventPhaseForced   EventKind = "phase_forced"
	EventGameEnded     EventKind = "game_ended"
)

// Event is one observable step of a hand. Service methods return the
// events produced by an action in order, so a caller can replay them to
// a display or a log.
type Event struct {
	Kind    EventKind
	Payload any
}

type GameStartedPayload struct {
	Trump         domain.Suit
	FirstAttacker int
	Difficulty    string
}

type AttackPlayedPayload struct {
	Seat  int
	Cards []domain.Card
}

type DefensePlayedPayload struct {
	Seat    int
	Attack  domain.Card
	Defense domain.Card
}

// AttackPassedPayload reports a same-rank pass: the card joins the
// table as a new attack and the defense obligation moves on.
type AttackPassedPayload struct {
	Seat        int
	Card        domain.Card
	NewDefender int
}

type CardsTakenPayload struct {
	Seat  int
	Count int
}

// AttacksBeatenPayload reports a fully defended table being cleared to
// the discard pile.
type AttacksBeatenPayload struct {
	Seat      int
	Discarded int
}

type CardsDrawnPayload struct {
	DeckRemaining int
	Attacker      int
}

type PhaseForcedPayload struct {
	Phase domain.Phase
}

type GameEndedPayload struct {
	Winner    int
	HasWinner bool
	Durak     int
	HasDurak  bool
}

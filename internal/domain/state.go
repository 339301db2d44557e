package domain

import (
	"math/rand"
	"time"
)

// Phase represents the lifecycle stage of a Durak hand.
type Phase string

const (
	// PhaseSetup is the pre-deal state where seats can be added.
	PhaseSetup Phase = "setup"
	// PhaseAttack is the state where the current attacker leads cards.
	PhaseAttack Phase = "attack"
	// PhaseDefense is the state where the current defender must beat,
	// pass, or take.
	PhaseDefense Phase = "defense"
	// PhaseDrawing is the state where hands are replenished to six.
	PhaseDrawing Phase = "drawing"
	// PhaseGameOver is the terminal state.
	PhaseGameOver Phase = "game_over"
)

// HandTarget is the hand size seats are replenished toward while the
// deck holds cards.
const HandTarget = 6

// stuckLimit bounds repeated Drawing-phase calls before the deadlock
// safety valve force-clears the table.
const stuckLimit = 5

// TableEntry is one attack on the table with its defense, if any. A
// defense, once recorded, never reverts within a table-clearing cycle.
type TableEntry struct {
	Attack   Card
	Defense  Card
	Defended bool
}

// GameState is the aggregate root for a Durak hand: seats, deck, table,
// discard pile, turn roles, and phase. All mutation goes through its
// methods; readers get whole-value copies or index-parameterized
// accessors, never references into inner collections.
type GameState struct {
	players      []*Player
	deck         *Deck
	discardPile  []Card
	table        []TableEntry
	attacker     int
	defender     int
	trump        Suit
	trumpSet     bool
	phase        Phase
	winner       int
	winnerSet    bool
	stuckCounter int
	rng          *rand.Rand
}

// NewGameState creates an empty game in the Setup phase. A nil rng
// falls back to a time-seeded source; tests inject a seeded one.
func NewGameState(rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GameState{
		deck:  NewDeck(),
		phase: PhaseSetup,
		rng:   rng,
	}
}

// Scenario describes a mid-game position, so harnesses and the demo
// driver can evaluate play from a known configuration rather than a
// fresh deal.
type Scenario struct {
	Players   []*Player
	DeckCards []Card
	Trump     Suit
	Discard   []Card
	Table     []TableEntry
	Attacker  int
	Defender  int
	Phase     Phase
}

// NewGameStateFrom builds a GameState from a scenario. The trump suit
// is taken from the scenario rather than a shuffle.
func NewGameStateFrom(sc Scenario, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	trump := sc.Trump
	deck := &Deck{cards: append([]Card{}, sc.DeckCards...), trump: &trump}
	return &GameState{
		players:     sc.Players,
		deck:        deck,
		discardPile: append([]Card{}, sc.Discard...),
		table:       append([]TableEntry{}, sc.Table...),
		attacker:    sc.Attacker,
		defender:    sc.Defender,
		trump:       sc.Trump,
		trumpSet:    true,
		phase:       sc.Phase,
		rng:         rng,
	}
}

// AddPlayer appends a seat. Seats are identified by insertion order and
// stable for the life of the game. Only meaningful before SetupGame.
func (g *GameState) AddPlayer(name string, playerType PlayerType) {
	g.players = append(g.players, NewPlayer(name, playerType))
}

// SetupGame reinitializes the hand: fresh shuffled deck, six cards per
// seat, trump from the deck bottom, starting attacker at the seat
// holding the lowest trump (seat 0 if nobody holds one), defender the
// next seat cyclically.
func (g *GameState) SetupGame() error {
	if len(g.players) < 2 {
		return ErrTooFewPlayers
	}
	g.deck = NewDeck()
	g.deck.Shuffle(g.rng)
	trump, _ := g.deck.TrumpSuit()
	g.trump = trump
	g.trumpSet = true
	g.discardPile = nil
	g.table = nil
	g.winnerSet = false
	for _, p := range g.players {
		p.hand = nil
		p.AddCards(g.deck.Deal(HandTarget))
	}
	g.attacker = g.firstAttacker()
	g.defender = (g.attacker + 1) % len(g.players)
	g.phase = PhaseAttack
	g.stuckCounter = 0
	return nil
}

// firstAttacker is the seat holding the lowest trump card dealt, or
// seat 0 when no trump was dealt.
func (g *GameState) firstAttacker() int {
	best := -1
	var bestRank Rank
	for i, p := range g.players {
		if _, card, ok := p.LowestTrump(g.trump); ok {
			if best == -1 || card.Rank < bestRank {
				best = i
				bestRank = card.Rank
			}
		}
	}
	if best == -1 {
		return 0
	}
	return best
}

// Attack removes the card at cardIdx from the seat's hand and appends
// it to the table as a new undefended entry, then moves to Defense with
// the acting seat as attacker and the next seat as defender. An
// out-of-range index is a caller error, not a rule rejection.
func (g *GameState) Attack(cardIdx, seat int) error {
	card, err := g.players[seat].RemoveCard(cardIdx)
	if err != nil {
		return err
	}
	g.table = append(g.table, TableEntry{Attack: card})
	g.phase = PhaseDefense
	g.attacker = seat
	g.defender = (seat + 1) % len(g.players)
	return nil
}

// Defend plays the defender's card at cardIdx against the first
// undefended table entry. A same-rank card is always a pass: it joins
// the table as a new undefended attack and the roles rotate, leaving
// the former attacker obligated to defend. A beating card is recorded
// as that entry's defense. Anything else fails with no state change.
func (g *GameState) Defend(cardIdx int) error {
	attackIdx := g.firstUndefended()
	if attackIdx == -1 {
		return ErrNothingToDefend
	}
	defender := g.players[g.defender]
	if cardIdx < 0 || cardIdx >= defender.HandSize() {
		return ErrInvalidCardIndex
	}
	defenseCard := defender.Hand()[cardIdx]
	attackCard := g.table[attackIdx].Attack

	if defenseCard.CanPass(attackCard) {
		return g.passAttack(cardIdx)
	}
	if !g.beats(defenseCard, attackCard) {
		return ErrInvalidDefense
	}
	card, err := defender.RemoveCard(cardIdx)
	if err != nil {
		return err
	}
	g.table[attackIdx].Defense = card
	g.table[attackIdx].Defended = true
	return nil
}

// passAttack moves the defender's same-rank card onto the table as a
// new undefended attack and rotates the roles: the passer becomes the
// attacker, the next seat the defender.
func (g *GameState) passAttack(cardIdx int) error {
	card, err := g.players[g.defender].RemoveCard(cardIdx)
	if err != nil {
		return err
	}
	g.table = append(g.table, TableEntry{Attack: card})
	oldDefender := g.defender
	g.attacker = oldDefender
	g.defender = (oldDefender + 1) % len(g.players)
	g.phase = PhaseDefense
	return nil
}

// beats applies the defense legality rule, falling back to plain
// same-suit-higher-rank if no trump has been resolved yet.
func (g *GameState) beats(defense, attack Card) bool {
	if g.trumpSet {
		return defense.CanBeat(attack, g.trump)
	}
	return defense.Suit == attack.Suit && defense.Rank > attack.Rank
}

// DefenseAssignment names a defense card for a specific table entry.
type DefenseAssignment struct {
	TableIndex int
	Card       Card
}

// DiscardCards records each assignment as its entry's defense, then, if
// every table entry is defended, atomically clears the whole table to
// the discard pile, rotates the roles (the successful defender attacks
// next), and moves to Drawing. With entries still undefended the phase
// stays Defense.
func (g *GameState) DiscardCards(assignments []DefenseAssignment) error {
	for _, a := range assignments {
		if a.TableIndex < 0 || a.TableIndex >= len(g.table) {
			return ErrInvalidTableIndex
		}
	}
	for _, a := range assignments {
		g.table[a.TableIndex].Defense = a.Card
		g.table[a.TableIndex].Defended = true
	}
	if g.firstUndefended() != -1 {
		return nil
	}
	g.clearTableToDiscard()
	oldDefender := g.defender
	g.attacker = oldDefender
	g.defender = (oldDefender + 1) % len(g.players)
	g.phase = PhaseDrawing
	return nil
}

// TakeCards moves every table card, attacks and partial defenses alike,
// into the current defender's hand, clears the table, and moves to
// Drawing. Valid only during Defense with a non-empty table.
func (g *GameState) TakeCards() error {
	if g.phase != PhaseDefense {
		return ErrWrongPhase
	}
	if len(g.table) == 0 {
		return ErrEmptyTable
	}
	taken := g.drainTable()
	g.players[g.defender].AddCards(taken)
	g.phase = PhaseDrawing
	return nil
}

// DrawCards replenishes hands during the Drawing phase and advances to
// Attack (or GameOver). Each call increments a stuck counter; past the
// limit the table is force-cleared to discard and the phase forced to
// Attack, a safety valve against undetected logic cycles. Draw order is
// attacker first, then the remaining seats cyclically, each topped up
// to six while the deck lasts.
func (g *GameState) DrawCards() {
	if g.phase != PhaseDrawing {
		return
	}
	g.stuckCounter++
	if g.stuckCounter > stuckLimit {
		g.phase = PhaseAttack
		g.stuckCounter = 0
		g.clearTableToDiscard()
		return
	}
	if !g.anyoneNeedsCards() {
		g.phase = PhaseAttack
		g.stuckCounter = 0
		return
	}
	n := len(g.players)
	for i := 0; i < n; i++ {
		p := g.players[(g.attacker+i)%n]
		if need := HandTarget - p.HandSize(); need > 0 && !g.deck.IsEmpty() {
			p.AddCards(g.deck.Deal(need))
		}
	}
	g.CheckGameOver()
	if g.phase != PhaseGameOver {
		// A cleared table means the roles already rotated on the
		// successful defense. A populated table at this point means the
		// defender took: skip them as attacker.
		if len(g.table) > 0 {
			g.attacker = (g.defender + 1) % n
			g.defender = (g.attacker + 1) % n
		}
		g.phase = PhaseAttack
	}
	if g.phase == PhaseAttack || g.phase == PhaseGameOver {
		g.stuckCounter = 0
	}
}

func (g *GameState) anyoneNeedsCards() bool {
	if g.deck.IsEmpty() {
		return false
	}
	for _, p := range g.players {
		if p.HandSize() < HandTarget {
			return true
		}
	}
	return false
}

// CheckGameOver ends the hand once the deck is empty and at most one
// seat still holds cards. The sole holder is the durak; in the two-seat
// model the other seat is recorded as winner. With zero holders the
// hand ends drawn, with no winner. Callers invoke this at well-defined
// points (after draws, after attacks); it is not polled independently.
func (g *GameState) CheckGameOver() bool {
	if !g.deck.IsEmpty() {
		return false
	}
	holders := 0
	loser := -1
	for i, p := range g.players {
		if !p.HandEmpty() {
			holders++
			loser = i
		}
	}
	if holders > 1 {
		return false
	}
	if holders == 1 {
		for i, p := range g.players {
			if i != loser && p.HandEmpty() {
				g.winner = i
				g.winnerSet = true
				break
			}
		}
	}
	g.phase = PhaseGameOver
	return true
}

// ForceAttackPhase is an idempotent escape hatch: any table contents go
// to the discard pile and the phase is forced to Attack. Used when the
// Drawing phase fails to resolve through the normal guard.
func (g *GameState) ForceAttackPhase() {
	g.phase = PhaseAttack
	g.stuckCounter = 0
	g.clearTableToDiscard()
}

// SetPhaseToDefense repairs the turn roles and phase after an attack
// batch, for orchestrators that detect a missed transition.
func (g *GameState) SetPhaseToDefense(attacker, defender int) {
	g.phase = PhaseDefense
	g.attacker = attacker
	g.defender = defender
}

func (g *GameState) firstUndefended() int {
	for i, e := range g.table {
		if !e.Defended {
			return i
		}
	}
	return -1
}

func (g *GameState) clearTableToDiscard() {
	g.discardPile = append(g.discardPile, g.drainTable()...)
}

// drainTable empties the table, returning attacks and defenses in play
// order.
func (g *GameState) drainTable() []Card {
	cards := make([]Card, 0, len(g.table)*2)
	for _, e := range g.table {
		cards = append(cards, e.Attack)
		if e.Defended {
			cards = append(cards, e.Defense)
		}
	}
	g.table = nil
	return cards
}

// Accessors. Slice-returning accessors copy, so callers cannot reach
// into the aggregate's internals.

func (g *GameState) PlayerCount() int {
	return len(g.players)
}

// Player returns the seat at the given index.
func (g *GameState) Player(seat int) *Player {
	return g.players[seat]
}

// Table returns the current attack/defense entries in play order.
func (g *GameState) Table() []TableEntry {
	return append([]TableEntry{}, g.table...)
}

// DiscardPile returns the cards retired from play so far.
func (g *GameState) DiscardPile() []Card {
	return append([]Card{}, g.discardPile...)
}

// TrumpSuit returns the resolved trump suit; ok is false before setup.
func (g *GameState) TrumpSuit() (Suit, bool) {
	return g.trump, g.trumpSet
}

func (g *GameState) DeckRemaining() int {
	return g.deck.Remaining()
}

func (g *GameState) DeckEmpty() bool {
	return g.deck.IsEmpty()
}

func (g *GameState) CurrentAttacker() int {
	return g.attacker
}

func (g *GameState) CurrentDefender() int {
	return g.defender
}

func (g *GameState) Phase() Phase {
	return g.phase
}

// Winner returns the winning seat once set; ok is false before game
// over and for drawn games.
func (g *GameState) Winner() (int, bool) {
	return g.winner, g.winnerSet
}

// ActiveSeat is the seat expected to act in the current phase: the
// attacker during Attack, the defender during Defense, the attacker
// otherwise.
func (g *GameState) ActiveSeat() int {
	if g.phase == PhaseDefense {
		return g.defender
	}
	return g.attacker
}

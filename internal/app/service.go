package app

import (
	"errors"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"durak/internal/bot"
	"durak/internal/domain"
)

// maxAITurns bounds one burst of consecutive AI decisions, a guard
// against unanticipated cycles such as an AI defending against its own
// pass forever.
const maxAITurns = 10

// Service contains the Durak use-cases operating on domain state: it
// applies human actions, drives the computer seats, and reports what
// happened as events.
type Service struct {
	strategy   bot.Strategy
	difficulty bot.Difficulty
	rng        *rand.Rand
	log        logrus.FieldLogger
}

// NewService constructs a Service playing the computer seats at the
// given difficulty. A nil rng falls back to a time-seeded source, a nil
// logger to the logrus standard logger.
func NewService(difficulty bot.Difficulty, log logrus.FieldLogger, rng *rand.Rand) (*Service, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	strategy, err := bot.New(difficulty, rng)
	if err != nil {
		return nil, err
	}
	return &Service{
		strategy:   strategy,
		difficulty: difficulty,
		rng:        rng,
		log:        log,
	}, nil
}

var (
	ErrNotHumanSeat    = errors.New("seat is not human controlled")
	ErrNotYourTurn     = errors.New("seat is not the acting seat")
	ErrNoCardsSelected = errors.New("no cards selected")
	ErrMixedRanks      = errors.New("multi-card attack requires a single rank")
	ErrTooManyAttacks  = errors.New("more attack cards than the defender holds")
)

// NewGame builds a two-seat game: the human in seat 0 and the computer
// in seat 1.
func (s *Service) NewGame(humanName, botName string) *domain.GameState {
	g := domain.NewGameState(s.rng)
	g.AddPlayer(humanName, domain.Human)
	g.AddPlayer(botName, domain.Computer)
	return g
}

// NewBotMatch builds a two-seat game played entirely by the computer,
// used for headless runs.
func (s *Service) NewBotMatch(nameA, nameB string) *domain.GameState {
	g := domain.NewGameState(s.rng)
	g.AddPlayer(nameA, domain.Computer)
	g.AddPlayer(nameB, domain.Computer)
	return g
}

// StartGame deals the hand and, if the computer holds the lowest trump,
// immediately plays its opening turns.
func (s *Service) StartGame(g *domain.GameState) ([]Event, error) {
	if err := g.SetupGame(); err != nil {
		return nil, err
	}
	trump, _ := g.TrumpSuit()
	s.log.WithFields(logrus.Fields{
		"trump":      trump.String(),
		"attacker":   g.CurrentAttacker(),
		"difficulty": s.difficulty.String(),
	}).Info("game started")
	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			Trump:         trump,
			FirstAttacker: g.CurrentAttacker(),
			Difficulty:    s.difficulty.String(),
		},
	}}
	if g.Player(g.ActiveSeat()).Type == domain.Computer {
		events = append(events, s.RunAITurns(g)...)
	}
	return events, nil
}

// HumanAttack plays one or more same-rank cards from the human seat as
// attacks. Indices are applied highest first so earlier removals do not
// shift later ones. Computer turns triggered by the attack run before
// returning.
func (s *Service) HumanAttack(g *domain.GameState, seat int, cardIdxs []int) ([]Event, error) {
	if g.Player(seat).Type != domain.Human {
		return nil, ErrNotHumanSeat
	}
	if g.Phase() != domain.PhaseAttack {
		return nil, domain.ErrWrongPhase
	}
	if len(cardIdxs) == 0 {
		return nil, ErrNoCardsSelected
	}
	hand := g.Player(seat).Hand()
	for _, idx := range cardIdxs {
		if idx < 0 || idx >= len(hand) {
			return nil, domain.ErrInvalidCardIndex
		}
	}
	if len(cardIdxs) > 1 {
		rank := hand[cardIdxs[0]].Rank
		for _, idx := range cardIdxs[1:] {
			if hand[idx].Rank != rank {
				return nil, ErrMixedRanks
			}
		}
		if len(cardIdxs) > g.Player(g.CurrentDefender()).HandSize() {
			return nil, ErrTooManyAttacks
		}
	}
	sorted := append([]int{}, cardIdxs...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	var played []domain.Card
	for _, idx := range sorted {
		card := g.Player(seat).Hand()[idx]
		if err := g.Attack(idx, seat); err != nil {
			return nil, err
		}
		played = append(played, card)
	}
	events := []Event{{
		Kind:    EventAttackPlayed,
		Payload: AttackPlayedPayload{Seat: seat, Cards: played},
	}}
	events = append(events, s.RunAITurns(g)...)
	return events, nil
}

// HumanDefend plays one card from the human defender against the first
// undefended attack. A same-rank card passes instead of defending.
// Completing the defense clears the table, draws, and lets the computer
// act.
func (s *Service) HumanDefend(g *domain.GameState, seat int, cardIdx int) ([]Event, error) {
	if g.Player(seat).Type != domain.Human {
		return nil, ErrNotHumanSeat
	}
	if g.Phase() != domain.PhaseDefense {
		return nil, domain.ErrWrongPhase
	}
	if g.CurrentDefender() != seat {
		return nil, ErrNotYourTurn
	}
	attack, _ := firstUndefended(g)
	hand := g.Player(seat).Hand()
	if cardIdx < 0 || cardIdx >= len(hand) {
		return nil, domain.ErrInvalidCardIndex
	}
	card := hand[cardIdx]
	if err := g.Defend(cardIdx); err != nil {
		return nil, err
	}
	var events []Event
	if g.CurrentDefender() != seat {
		events = append(events, Event{
			Kind:    EventAttackPassed,
			Payload: AttackPassedPayload{Seat: seat, Card: card, NewDefender: g.CurrentDefender()},
		})
		if g.Player(g.CurrentDefender()).Type == domain.Computer {
			events = append(events, s.RunAITurns(g)...)
		}
		return events, nil
	}
	events = append(events, Event{
		Kind:    EventDefensePlayed,
		Payload: DefensePlayedPayload{Seat: seat, Attack: attack, Defense: card},
	})
	if allDefended(g) {
		events = append(events, s.clearBeatenTable(g, seat)...)
		g.DrawCards()
		events = append(events, drawEvent(g))
		events = append(events, s.RunAITurns(g)...)
	}
	return events, nil
}

// HumanTake has the human defender pick up the whole table, then draws
// and lets the computer act.
func (s *Service) HumanTake(g *domain.GameState, seat int) ([]Event, error) {
	if g.Player(seat).Type != domain.Human {
		return nil, ErrNotHumanSeat
	}
	if g.CurrentDefender() != seat {
		return nil, ErrNotYourTurn
	}
	count := tableCardCount(g)
	if err := g.TakeCards(); err != nil {
		return nil, err
	}
	events := []Event{{
		Kind:    EventCardsTaken,
		Payload: CardsTakenPayload{Seat: seat, Count: count},
	}}
	g.DrawCards()
	events = append(events, drawEvent(g))
	events = append(events, s.RunAITurns(g)...)
	return events, nil
}

// HumanPassTurn declines to lead an attack, handing the initiative to
// the computer.
func (s *Service) HumanPassTurn(g *domain.GameState, seat int) ([]Event, error) {
	if g.Player(seat).Type != domain.Human {
		return nil, ErrNotHumanSeat
	}
	if g.Phase() != domain.PhaseAttack {
		return nil, domain.ErrWrongPhase
	}
	g.DrawCards()
	return s.RunAITurns(g), nil
}

// AcknowledgeDraw resolves a pending Drawing phase, forcing Attack if
// the draw fails to settle, and then lets the computer act.
func (s *Service) AcknowledgeDraw(g *domain.GameState) []Event {
	if g.Phase() != domain.PhaseDrawing {
		return nil
	}
	var events []Event
	g.DrawCards()
	events = append(events, drawEvent(g))
	if g.Phase() == domain.PhaseDrawing {
		s.log.Warn("drawing phase stuck, forcing attack")
		g.ForceAttackPhase()
		events = append(events, Event{Kind: EventPhaseForced, Payload: PhaseForcedPayload{Phase: g.Phase()}})
	}
	if g.CheckGameOver() {
		return append(events, gameEndedEvent(g))
	}
	return append(events, s.RunAITurns(g)...)
}

// RunAITurns drives the computer seats until the human must act, the
// game ends, or the iteration cap trips. Each iteration re-reads phase
// and roles from the state, so a pass from one AI seat to another is
// just another loop.
func (s *Service) RunAITurns(g *domain.GameState) []Event {
	var events []Event
	for iter := 1; iter <= maxAITurns; iter++ {
		if g.CheckGameOver() {
			return append(events, gameEndedEvent(g))
		}
		seat := g.ActiveSeat()
		if g.Player(seat).Type != domain.Computer {
			return events
		}
		s.log.WithFields(logrus.Fields{
			"iteration": iter,
			"seat":      seat,
			"phase":     g.Phase(),
		}).Debug("ai turn")

		switch g.Phase() {
		case domain.PhaseAttack:
			events = append(events, s.aiAttack(g, seat)...)
			if g.Phase() == domain.PhaseDefense {
				if g.Player(g.CurrentDefender()).Type == domain.Human {
					return events
				}
				continue
			}
			if g.Phase() == domain.PhaseAttack {
				// Attacker declined to lead; move the hand along.
				g.DrawCards()
				events = append(events, drawEvent(g))
			}
		case domain.PhaseDefense:
			events = append(events, s.aiDefense(g, seat)...)
			if g.Phase() == domain.PhaseDefense {
				defender := g.CurrentDefender()
				if defender != seat {
					if g.Player(defender).Type == domain.Computer {
						continue
					}
					return events
				}
				g.DrawCards()
				events = append(events, drawEvent(g))
			} else if g.Phase() == domain.PhaseDrawing {
				g.DrawCards()
				events = append(events, drawEvent(g))
			}
		case domain.PhaseDrawing:
			g.DrawCards()
			events = append(events, drawEvent(g))
			if g.Phase() == domain.PhaseAttack {
				if g.Player(g.CurrentAttacker()).Type == domain.Human {
					return events
				}
				continue
			}
		default:
			return events
		}

		if g.Phase() == domain.PhaseDrawing {
			g.DrawCards()
			events = append(events, drawEvent(g))
			if g.Phase() == domain.PhaseDrawing {
				s.log.Warn("drawing phase stuck, forcing attack")
				g.ForceAttackPhase()
				events = append(events, Event{Kind: EventPhaseForced, Payload: PhaseForcedPayload{Phase: g.Phase()}})
			}
			if g.Phase() == domain.PhaseAttack && g.Player(g.CurrentAttacker()).Type == domain.Human {
				return events
			}
		}
		if g.CheckGameOver() {
			return append(events, gameEndedEvent(g))
		}
		if iter >= maxAITurns-1 {
			s.log.Warn("ai turn iteration cap reached")
			if g.Phase() == domain.PhaseDrawing {
				g.ForceAttackPhase()
			}
			return events
		}
	}
	return events
}

// aiAttack asks the strategy for attack cards and applies them, highest
// hand index first so earlier removals do not shift later ones.
func (s *Service) aiAttack(g *domain.GameState, seat int) []Event {
	if g.Phase() != domain.PhaseAttack || g.CurrentAttacker() != seat {
		return nil
	}
	plays := s.strategy.MakeAttackMove(g, seat)
	if len(plays) == 0 {
		s.log.WithField("seat", seat).Debug("ai declines to attack")
		return nil
	}
	indices := make([]int, len(plays))
	for i, p := range plays {
		indices[i] = p.HandIndex
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	var played []domain.Card
	for _, idx := range indices {
		card := g.Player(seat).Hand()[idx]
		if err := g.Attack(idx, seat); err != nil {
			s.log.WithError(err).Warn("ai attack rejected")
			break
		}
		played = append(played, card)
	}
	if len(played) == 0 {
		return nil
	}
	if g.Phase() != domain.PhaseDefense {
		g.SetPhaseToDefense(seat, (seat+1)%g.PlayerCount())
	}
	return []Event{{
		Kind:    EventAttackPlayed,
		Payload: AttackPlayedPayload{Seat: seat, Cards: played},
	}}
}

// aiDefense runs the defender's decision loop: take outright if the
// strategy says so, otherwise beat or pass attacks one at a time until
// the table is clear, a pass moves the obligation, or the strategy runs
// out of answers and takes after all.
func (s *Service) aiDefense(g *domain.GameState, seat int) []Event {
	if g.Phase() != domain.PhaseDefense || g.CurrentDefender() != seat {
		return nil
	}
	var events []Event
	if s.strategy.ShouldTakeCards(g, seat) {
		count := tableCardCount(g)
		if err := g.TakeCards(); err != nil {
			s.log.WithError(err).Warn("ai take rejected")
			return nil
		}
		return append(events, Event{
			Kind:    EventCardsTaken,
			Payload: CardsTakenPayload{Seat: seat, Count: count},
		})
	}
	if _, ok := firstUndefended(g); !ok {
		return nil
	}

	defenseFailed := false
	for !defenseFailed {
		attack, ok := firstUndefended(g)
		if !ok {
			break
		}
		plays := s.strategy.MakeDefenseMove(g, seat)
		if len(plays) == 0 {
			defenseFailed = true
			break
		}
		for _, play := range plays {
			// Hand indices may have shifted since the strategy looked;
			// re-locate the card by value.
			idx, found := findCardIndex(g, seat, play.Card)
			if !found {
				defenseFailed = true
				break
			}
			if err := g.Defend(idx); err != nil {
				s.log.WithError(err).Debug("ai defense rejected")
				defenseFailed = true
				break
			}
			if g.CurrentDefender() != seat {
				return append(events, Event{
					Kind:    EventAttackPassed,
					Payload: AttackPassedPayload{Seat: seat, Card: play.Card, NewDefender: g.CurrentDefender()},
				})
			}
			events = append(events, Event{
				Kind:    EventDefensePlayed,
				Payload: DefensePlayedPayload{Seat: seat, Attack: attack, Defense: play.Card},
			})
			if allDefended(g) {
				return append(events, s.clearBeatenTable(g, seat)...)
			}
		}
	}
	if defenseFailed || hasUndefended(g) {
		count := tableCardCount(g)
		if err := g.TakeCards(); err != nil {
			s.log.WithError(err).Warn("ai take rejected")
			return events
		}
		events = append(events, Event{
			Kind:    EventCardsTaken,
			Payload: CardsTakenPayload{Seat: seat, Count: count},
		})
	}
	return events
}

// clearBeatenTable discards a fully defended table through the explicit
// assignment path.
func (s *Service) clearBeatenTable(g *domain.GameState, seat int) []Event {
	var assignments []domain.DefenseAssignment
	for i, e := range g.Table() {
		if e.Defended {
			assignments = append(assignments, domain.DefenseAssignment{TableIndex: i, Card: e.Defense})
		}
	}
	discarded := tableCardCount(g)
	if err := g.DiscardCards(assignments); err != nil {
		s.log.WithError(err).Warn("discard rejected")
		return nil
	}
	return []Event{{
		Kind:    EventAttacksBeaten,
		Payload: AttacksBeatenPayload{Seat: seat, Discarded: discarded},
	}}
}

func drawEvent(g *domain.GameState) Event {
	return Event{
		Kind: EventCardsDrawn,
		Payload: CardsDrawnPayload{
			DeckRemaining: g.DeckRemaining(),
			Attacker:      g.CurrentAttacker(),
		},
	}
}

func gameEndedEvent(g *domain.GameState) Event {
	payload := GameEndedPayload{}
	if winner, ok := g.Winner(); ok {
		payload.Winner = winner
		payload.HasWinner = true
	}
	for seat := 0; seat < g.PlayerCount(); seat++ {
		if !g.Player(seat).HandEmpty() {
			payload.Durak = seat
			payload.HasDurak = true
			break
		}
	}
	return Event{Kind: EventGameEnded, Payload: payload}
}

func firstUndefended(g *domain.GameState) (domain.Card, bool) {
	for _, e := range g.Table() {
		if !e.Defended {
			return e.Attack, true
		}
	}
	return domain.Card{}, false
}

func hasUndefended(g *domain.GameState) bool {
	_, ok := firstUndefended(g)
	return ok
}

func allDefended(g *domain.GameState) bool {
	table := g.Table()
	if len(table) == 0 {
		return false
	}
	return !hasUndefended(g)
}

func tableCardCount(g *domain.GameState) int {
	n := 0
	for _, e := range g.Table() {
		n++
		if e.Defended {
			n++
		}
	}
	return n
}

func findCardIndex(g *domain.GameState, seat int, card domain.Card) (int, bool) {
	for i, c := range g.Player(seat).Hand() {
		if c == card {
			return i, true
		}
	}
	return 0, false
}

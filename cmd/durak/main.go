// Command durak runs a headless two-bot Durak match and logs the play
// as it unfolds. DURAK_SEED pins the deal, DURAK_DIFFICULTY picks the
// strategy tier for both seats.
package main

import (
	"github.com/sirupsen/logrus"

	"durak/internal/app"
	"durak/internal/config"
	"durak/internal/domain"
)

// maxRounds bounds the driver loop. A two-seat hand resolves in far
// fewer bursts; hitting the bound means the state machine stalled.
const maxRounds = 200

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	svc, err := app.NewService(cfg.Difficulty, log, cfg.Rand())
	if err != nil {
		log.WithError(err).Fatal("create service")
	}

	g := svc.NewBotMatch(cfg.PlayerName, cfg.BotName)
	events, err := svc.StartGame(g)
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	report(log, g, events)

	for round := 0; g.Phase() != domain.PhaseGameOver && round < maxRounds; round++ {
		var burst []app.Event
		if g.Phase() == domain.PhaseDrawing {
			burst = svc.AcknowledgeDraw(g)
		} else {
			burst = svc.RunAITurns(g)
		}
		report(log, g, burst)
		if len(burst) == 0 && g.Phase() != domain.PhaseGameOver {
			log.WithField("phase", g.Phase()).Error("match stalled")
			break
		}
	}

	if g.Phase() != domain.PhaseGameOver {
		log.Error("match did not finish")
		return
	}
	if winner, ok := g.Winner(); ok {
		log.WithField("winner", g.Player(winner).Name).Info("match over")
	} else {
		log.Info("match over: drawn, no durak")
	}
}

func report(log *logrus.Logger, g *domain.GameState, events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.GameStartedPayload:
			log.WithFields(logrus.Fields{
				"trump":      p.Trump.String(),
				"attacker":   g.Player(p.FirstAttacker).Name,
				"difficulty": p.Difficulty,
			}).Info("hand dealt")
		case app.AttackPlayedPayload:
			log.WithFields(logrus.Fields{
				"seat":  g.Player(p.Seat).Name,
				"cards": cardNames(p.Cards),
			}).Info("attack")
		case app.DefensePlayedPayload:
			log.WithFields(logrus.Fields{
				"seat":    g.Player(p.Seat).Name,
				"attack":  p.Attack.String(),
				"defense": p.Defense.String(),
			}).Info("defense")
		case app.AttackPassedPayload:
			log.WithFields(logrus.Fields{
				"seat": g.Player(p.Seat).Name,
				"card": p.Card.String(),
			}).Info("pass")
		case app.CardsTakenPayload:
			log.WithFields(logrus.Fields{
				"seat":  g.Player(p.Seat).Name,
				"count": p.Count,
			}).Info("took the table")
		case app.AttacksBeatenPayload:
			log.WithFields(logrus.Fields{
				"seat":      g.Player(p.Seat).Name,
				"discarded": p.Discarded,
			}).Info("table beaten")
		case app.CardsDrawnPayload:
			log.WithField("deck", p.DeckRemaining).Debug("drew up")
		case app.PhaseForcedPayload:
			log.WithField("phase", p.Phase).Warn("phase forced")
		case app.GameEndedPayload:
			if p.HasDurak {
				log.WithField("durak", g.Player(p.Durak).Name).Info("game over")
			} else {
				log.Info("game over: drawn")
			}
		}
	}
}

func cardNames(cards []domain.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return names
}

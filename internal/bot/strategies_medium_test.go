package bot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"durak/internal/domain"
)

func TestMediumBotTakesToSaveHighTrumps(t *testing.T) {
	// Only J♣ answers the trump Ten; a high-trump requirement always
	// forces a take.
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer,
		domain.Card{Suit: domain.Clubs, Rank: domain.Jack},
		domain.Card{Suit: domain.Hearts, Rank: domain.Six})
	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, []domain.TableEntry{
		{Attack: domain.Card{Suit: domain.Clubs, Rank: domain.Ten}},
	})
	b := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{})
	assert.True(t, b.ShouldTakeCards(g, 1))
}

func TestMediumBotTrumpSaveRoll(t *testing.T) {
	// Both Tens are answerable only by low trumps.
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer,
		domain.Card{Suit: domain.Clubs, Rank: domain.Six},
		domain.Card{Suit: domain.Clubs, Rank: domain.Seven},
		domain.Card{Suit: domain.Hearts, Rank: domain.Six})
	table := []domain.TableEntry{
		{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Ten}},
		{Attack: domain.Card{Suit: domain.Diamonds, Rank: domain.Ten}},
	}
	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, table)
	always := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{TrumpSaveTakeChance: 1})
	assert.True(t, always.ShouldTakeCards(g, 1))

	never := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{TrumpSaveTakeChance: 0})
	assert.False(t, never.ShouldTakeCards(g, 1))
}

func TestMediumBotTakesAgainstFourAttacks(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer,
		domain.Card{Suit: domain.Hearts, Rank: domain.Seven},
		domain.Card{Suit: domain.Diamonds, Rank: domain.Seven},
		domain.Card{Suit: domain.Spades, Rank: domain.Seven},
		domain.Card{Suit: domain.Hearts, Rank: domain.Nine})
	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, []domain.TableEntry{
		{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Six}},
		{Attack: domain.Card{Suit: domain.Diamonds, Rank: domain.Six}},
		{Attack: domain.Card{Suit: domain.Spades, Rank: domain.Six}},
		{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Eight}},
	})
	b := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{})
	assert.True(t, b.ShouldTakeCards(g, 1), "four undefended attacks are always too many")
}

func TestMediumBotInitialAttackLowestNonTrump(t *testing.T) {
	// Hand 7♥ 8♥ 6♠ with Spades trump must lead 7♥.
	attacker := testPlayer("attacker", domain.Computer,
		domain.Card{Suit: domain.Hearts, Rank: domain.Seven},
		domain.Card{Suit: domain.Hearts, Rank: domain.Eight},
		domain.Card{Suit: domain.Spades, Rank: domain.Six})
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Diamonds, Rank: domain.Ten})
	g := twoSeatState(domain.Spades, domain.PhaseAttack, attacker, defender, nil)
	b := NewMediumBot(rand.New(rand.NewSource(1)), DefaultMediumTuning)
	plays := b.MakeAttackMove(g, 0)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Hearts, Rank: domain.Seven}, plays[0].Card)
}

func TestMediumBotInitialAttackLeadsFromPair(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer,
		domain.Card{Suit: domain.Hearts, Rank: domain.Nine},
		domain.Card{Suit: domain.Spades, Rank: domain.Nine},
		domain.Card{Suit: domain.Diamonds, Rank: domain.Six})
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Diamonds, Rank: domain.Ten})
	g := twoSeatState(domain.Clubs, domain.PhaseAttack, attacker, defender, nil)
	b := NewMediumBot(rand.New(rand.NewSource(1)), DefaultMediumTuning)
	plays := b.MakeAttackMove(g, 0)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Nine, plays[0].Card.Rank, "pair lead beats the lone lower card")
	assert.NotEqual(t, domain.Clubs, plays[0].Card.Suit)
}

func TestMediumBotTrumpOnlyHandLeadsLowestTrump(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer,
		domain.Card{Suit: domain.Clubs, Rank: domain.King},
		domain.Card{Suit: domain.Clubs, Rank: domain.Seven})
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Diamonds, Rank: domain.Ten})
	g := twoSeatState(domain.Clubs, domain.PhaseAttack, attacker, defender, nil)
	b := NewMediumBot(rand.New(rand.NewSource(1)), DefaultMediumTuning)
	plays := b.MakeAttackMove(g, 0)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Clubs, Rank: domain.Seven}, plays[0].Card)
}

func TestMediumBotFollowUpStopRoll(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer,
		domain.Card{Suit: domain.Diamonds, Rank: domain.Six})
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Spades, Rank: domain.Ten})
	table := []domain.TableEntry{{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Six}}}

	g := twoSeatState(domain.Clubs, domain.PhaseAttack, attacker, defender, table)
	stop := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{StopAddingChance: 1})
	plays := stop.MakeAttackMove(g, 0)
	require.NotNil(t, plays)
	assert.Empty(t, plays, "stop roll declines without surrendering the turn")

	add := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{StopAddingChance: 0})
	plays = add.MakeAttackMove(g, 0)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Diamonds, Rank: domain.Six}, plays[0].Card)
}

func TestMediumBotFollowUpTrumpOnlyAfterDefenderSpentOne(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer,
		domain.Card{Suit: domain.Clubs, Rank: domain.Six},
		domain.Card{Suit: domain.Spades, Rank: domain.Nine})
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Spades, Rank: domain.Ten})
	table := []domain.TableEntry{{
		Attack:   domain.Card{Suit: domain.Hearts, Rank: domain.Six},
		Defense:  domain.Card{Suit: domain.Clubs, Rank: domain.Seven},
		Defended: true,
	}}

	g := twoSeatState(domain.Clubs, domain.PhaseAttack, attacker, defender, table)
	feed := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{AddTrumpChance: 1})
	plays := feed.MakeAttackMove(g, 0)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Clubs, Rank: domain.Six}, plays[0].Card)

	hold := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{AddTrumpChance: 0})
	plays = hold.MakeAttackMove(g, 0)
	require.NotNil(t, plays)
	assert.Empty(t, plays, "without the roll the trump stays in hand")
}

func TestMediumBotDefensePassRoll(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer,
		domain.Card{Suit: domain.Spades, Rank: domain.Seven},
		domain.Card{Suit: domain.Hearts, Rank: domain.Ten})
	table := []domain.TableEntry{{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Seven}}}

	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, table)
	pass := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{PassChance: 1})
	plays := pass.MakeDefenseMove(g, 1)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Spades, Rank: domain.Seven}, plays[0].Card)

	beat := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{PassChance: 0})
	plays = beat.MakeDefenseMove(g, 1)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Hearts, Rank: domain.Ten}, plays[0].Card)
}

func TestMediumBotDefenseSpendsTrumpOnHighValueAttack(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer,
		domain.Card{Suit: domain.Hearts, Rank: domain.Queen},
		domain.Card{Suit: domain.Clubs, Rank: domain.Six})
	table := []domain.TableEntry{{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Jack}}}

	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, table)
	trumping := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{TrumpHighValueChance: 1})
	plays := trumping.MakeDefenseMove(g, 1)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Clubs, Rank: domain.Six}, plays[0].Card)

	thrifty := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{TrumpHighValueChance: 0})
	plays = thrifty.MakeDefenseMove(g, 1)
	require.Len(t, plays, 1)
	assert.Equal(t, domain.Card{Suit: domain.Hearts, Rank: domain.Queen}, plays[0].Card)
}

func TestMediumBotDefenseCannotDefend(t *testing.T) {
	attacker := testPlayer("attacker", domain.Computer)
	defender := testPlayer("defender", domain.Computer, domain.Card{Suit: domain.Diamonds, Rank: domain.Six})
	g := twoSeatState(domain.Clubs, domain.PhaseDefense, attacker, defender, []domain.TableEntry{
		{Attack: domain.Card{Suit: domain.Hearts, Rank: domain.Seven}},
	})
	b := NewMediumBot(rand.New(rand.NewSource(1)), MediumTuning{})
	assert.Nil(t, b.MakeDefenseMove(g, 1))
}

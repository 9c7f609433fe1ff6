// internal/game/game_test.go
package game

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeuno/server/internal/models"
)

// mockBroadcaster records everything the game fires so tests can assert on
// the event stream without a websocket.
type mockBroadcaster struct {
	mu      sync.Mutex
	events  []GameEvent
	private map[uuid.UUID][]GameEvent
}

func newMockBroadcaster() *mockBroadcaster {
	return &mockBroadcaster{private: make(map[uuid.UUID][]GameEvent)}
}

func (m *mockBroadcaster) broadcast(ev GameEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
}

func (m *mockBroadcaster) broadcastTo(playerID uuid.UUID, ev GameEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.private[playerID] = append(m.private[playerID], ev)
}

func (m *mockBroadcaster) eventsOfType(t GameEventType) []GameEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []GameEvent
	for _, ev := range m.events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func card(color models.Color, value, id string) models.Card {
	return models.Card{ID: id, Color: color, Value: value}
}

// setupTestGame starts a seeded round and detaches the clock goroutine so
// tests drive Tick by hand.
func setupTestGame(t *testing.T, numPlayers int, rules RoomRules, seed int64) (*UnoGame, []uuid.UUID, *mockBroadcaster) {
	t.Helper()
	var roster []models.Participant
	var ids []uuid.UUID
	for i := 0; i < numPlayers; i++ {
		id := uuid.New()
		ids = append(ids, id)
		roster = append(roster, models.Participant{
			UserID:   id,
			Username: "player" + string(rune('A'+i)),
			Seat:     i,
			Language: "python",
		})
	}
	g := NewUnoGameWithRand("123456", roster, rules, testRand(seed))
	mb := newMockBroadcaster()
	g.BroadcastFn = mb.broadcast
	g.BroadcastToPlayerFn = mb.broadcastTo
	require.NoError(t, g.Start())
	stopClock(g)
	return g, ids, mb
}

func stopClock(g *UnoGame) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if !g.clockStopped {
		g.clockStopped = true
		close(g.clockStop)
	}
}

// setTable overwrites hands and the discard pile so a test starts from a
// known position. The first hand belongs to the current player.
func setTable(g *UnoGame, top models.Card, hands ...[]models.Card) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	for i, h := range hands {
		g.Players[i].Hand = append([]models.Card{}, h...)
		g.Players[i].HasCalledUno = false
	}
	g.DiscardPile = []models.Card{top}
	g.ActiveColor = ""
	g.Phase = PhaseAwaitingPlay
	g.CurrentPlayerIndex = 0
	g.Direction = 1
	g.unoDebtorID = uuid.Nil
}

func clockless() RoomRules {
	rules := DefaultRoomRules()
	rules.TurnClockSec = 0
	rules.RoundClockSec = 0
	return rules
}

func TestStartDealsHandsAndSeedsDiscard(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 11)

	for _, p := range g.Players {
		assert.Len(t, p.Hand, 7)
	}
	// 108 minus four hands of seven minus the seed card; wild seeds are
	// recycled back so the count is exact.
	assert.Equal(t, 79, g.Deck.Size())
	require.Len(t, g.DiscardPile, 1)
	assert.False(t, g.DiscardPile[0].IsWild(), "seed card must be chromatic")
	assert.Equal(t, PhaseAwaitingPlay, g.Phase)

	st := g.SnapshotFor(ids[0])
	assert.Equal(t, models.RoomPlaying, st.Status)
	assert.Equal(t, ids[0], st.CurrentPlayerID)
}

func TestPlayCardOutOfTurn(t *testing.T) {
	g, ids, _ := setupTestGame(t, 3, clockless(), 2)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1")},
		[]models.Card{card(models.ColorRed, "3", "red-3-1")},
		[]models.Card{card(models.ColorRed, "1", "red-1-1")},
	)

	_, err := g.PlayCard(ids[1], "red-3-1")
	assert.ErrorIs(t, err, ErrNotYourTurn)
	assert.Len(t, g.Players[1].Hand, 1)
	assert.Equal(t, 0, g.CurrentPlayerIndex)
}

func TestPlayCardUnknownPlayer(t *testing.T) {
	g, _, _ := setupTestGame(t, 2, clockless(), 2)
	_, err := g.PlayCard(uuid.New(), "red-5-1")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestPlayCardIllegalLeavesStateUnchanged(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 3)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorBlue, "7", "blue-7-1"), card(models.ColorRed, "2", "red-2-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)

	_, err := g.PlayCard(ids[0], "blue-7-1")
	assert.ErrorIs(t, err, ErrIllegalCard)
	assert.Len(t, g.Players[0].Hand, 2)
	assert.Len(t, g.DiscardPile, 1)
	assert.Equal(t, 0, g.CurrentPlayerIndex)

	// A card the player does not hold is rejected the same way.
	_, err = g.PlayCard(ids[0], "yellow-9-1")
	assert.ErrorIs(t, err, ErrIllegalCard)
}

func TestPlayNumberCardAdvancesTurn(t *testing.T) {
	g, ids, mb := setupTestGame(t, 3, clockless(), 4)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
	)

	st, err := g.PlayCard(ids[0], "red-9-1")
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, 1)
	assert.Equal(t, "red-9-1", st.DiscardTop.ID)
	assert.Equal(t, ids[1], st.CurrentPlayerID)
	assert.Empty(t, st.ActiveColor)

	played := mb.eventsOfType(EventCardPlayed)
	require.Len(t, played, 1)
	assert.Equal(t, ids[0], played[0].User.ID)
	assert.Equal(t, "red-9-1", played[0].Card.ID)
}

func TestValueMatchAcrossColors(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 5)
	setTable(g, card(models.ColorBlue, "7", "blue-7-1"),
		[]models.Card{card(models.ColorRed, "7", "red-7-1"), card(models.ColorRed, "2", "red-2-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)

	_, err := g.PlayCard(ids[0], "red-7-1")
	assert.NoError(t, err)
}

func TestSkipAdvancesTwoSeats(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 6)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, models.ValueSkip, "red-Skip-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
		[]models.Card{card(models.ColorBlue, "1", "blue-1-1")},
	)

	st, err := g.PlayCard(ids[0], "red-Skip-1")
	require.NoError(t, err)
	assert.Equal(t, ids[2], st.CurrentPlayerID, "skip must jump over one player")
}

func TestReverseFlipsDirection(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 7)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, models.ValueReverse, "red-Reverse-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
		[]models.Card{card(models.ColorBlue, "1", "blue-1-1")},
	)

	st, err := g.PlayCard(ids[0], "red-Reverse-1")
	require.NoError(t, err)
	assert.Equal(t, -1, g.Direction)
	assert.Equal(t, ids[3], st.CurrentPlayerID, "reverse must hand the turn to the previous seat")
}

func TestReverseWithTwoPlayersActsAsSkip(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 8)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, models.ValueReverse, "red-Reverse-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)

	st, err := g.PlayCard(ids[0], "red-Reverse-1")
	require.NoError(t, err)
	assert.Equal(t, ids[0], st.CurrentPlayerID, "two-player reverse keeps the turn")
}

func TestDrawTwoPenalizesAndSkips(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 9)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, models.ValueDrawTwo, "red-Draw Two-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
		[]models.Card{card(models.ColorBlue, "1", "blue-1-1")},
	)

	st, err := g.PlayCard(ids[0], "red-Draw Two-1")
	require.NoError(t, err)
	assert.Len(t, g.Players[1].Hand, 3, "victim draws two")
	assert.Equal(t, ids[2], st.CurrentPlayerID, "victim loses the turn")
}

func TestWildHoldsTurnForColorChoice(t *testing.T) {
	g, ids, _ := setupTestGame(t, 3, clockless(), 10)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorWild, models.ValueWild, "wild-0"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1"), card(models.ColorRed, "4", "red-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
	)

	st, err := g.PlayCard(ids[0], "wild-0")
	require.NoError(t, err)
	assert.Equal(t, PhaseAwaitingColorChoice, st.Phase)
	assert.Equal(t, ids[0], st.CurrentPlayerID, "turn is held until the color is chosen")

	// No other intent resolves while the choice is pending.
	_, err = g.PlayCard(ids[0], "blue-3-1")
	assert.ErrorIs(t, err, ErrIllegalCard)
	_, err = g.ChooseColor(ids[1], models.ColorGreen)
	assert.ErrorIs(t, err, ErrInvalidColorChoice)
	_, err = g.ChooseColor(ids[0], models.ColorWild)
	assert.ErrorIs(t, err, ErrInvalidColorChoice)

	st, err = g.ChooseColor(ids[0], models.ColorGreen)
	require.NoError(t, err)
	assert.Equal(t, models.ColorGreen, st.ActiveColor)
	assert.Equal(t, PhaseAwaitingPlay, st.Phase)
	assert.Equal(t, ids[1], st.CurrentPlayerID)

	// The chosen color now gates legality.
	_, err = g.PlayCard(ids[1], "red-4-1")
	assert.ErrorIs(t, err, ErrIllegalCard)
	_, err = g.PlayCard(ids[1], "green-4-1")
	assert.NoError(t, err)
}

func TestWildDrawFourPenalizesAfterChoice(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 12)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorWild, models.ValueWildDrawFour, "wild-draw-0"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
		[]models.Card{card(models.ColorYellow, "8", "yellow-8-1")},
		[]models.Card{card(models.ColorBlue, "1", "blue-1-1")},
	)

	_, err := g.PlayCard(ids[0], "wild-draw-0")
	require.NoError(t, err)
	assert.Len(t, g.Players[1].Hand, 1, "penalty waits for the color choice")

	st, err := g.ChooseColor(ids[0], models.ColorBlue)
	require.NoError(t, err)
	assert.Len(t, g.Players[1].Hand, 5, "victim draws four")
	assert.Equal(t, ids[2], st.CurrentPlayerID, "victim loses the turn")
	assert.Equal(t, models.ColorBlue, st.ActiveColor)
}

func TestDrawCardEndsTurn(t *testing.T) {
	g, ids, mb := setupTestGame(t, 3, clockless(), 13)
	before := len(g.Players[0].Hand)
	deckBefore := g.Deck.Size()

	st, err := g.DrawCard(ids[0])
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, before+1)
	assert.Equal(t, deckBefore-1, g.Deck.Size())
	assert.Equal(t, ids[1], st.CurrentPlayerID)

	// The drawn card identity only goes to the drawer.
	priv := mb.private[ids[0]]
	require.NotEmpty(t, priv)
	assert.NotNil(t, priv[len(priv)-1].Card)
	public := mb.eventsOfType(EventCardDrawn)
	require.Len(t, public, 1)
	assert.Nil(t, public[0].Card, "broadcast draw event must not leak the card")
}

func TestDrawCardOutOfTurn(t *testing.T) {
	g, ids, _ := setupTestGame(t, 3, clockless(), 14)
	_, err := g.DrawCard(ids[2])
	assert.ErrorIs(t, err, ErrNotYourTurn)
}

func TestEmptyHandWinsAndScores(t *testing.T) {
	g, ids, mb := setupTestGame(t, 3, clockless(), 15)

	var gotWinner uuid.UUID
	var gotScores map[uuid.UUID]int
	g.OnRoundEnd = func(pin string, winner uuid.UUID, scores map[uuid.UUID]int) {
		gotWinner = winner
		gotScores = scores
	}

	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1")},
		[]models.Card{card(models.ColorWild, models.ValueWild, "wild-1"), card(models.ColorBlue, models.ValueSkip, "blue-Skip-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)

	st, err := g.PlayCard(ids[0], "red-9-1")
	require.NoError(t, err)
	assert.Equal(t, PhaseRoundFinished, st.Phase)
	assert.Equal(t, ids[0], st.Winner)
	assert.Equal(t, models.RoomFinished, st.Status)

	// 50 for the wild, 20 for the skip, 4 for the number card.
	assert.Equal(t, 74, g.Players[0].Score)
	assert.Equal(t, ids[0], gotWinner)
	assert.Equal(t, 0, gotScores[ids[0]])
	assert.Equal(t, 70, gotScores[ids[1]])
	assert.Equal(t, 4, gotScores[ids[2]])

	finished := mb.eventsOfType(EventRoundFinished)
	require.Len(t, finished, 1)
	assert.Equal(t, ids[0].String(), finished[0].Payload["winnerId"])

	// Every further intent bounces.
	_, err = g.PlayCard(ids[1], "wild-1")
	assert.ErrorIs(t, err, ErrRoundFinished)
	_, err = g.DrawCard(ids[1])
	assert.ErrorIs(t, err, ErrRoundFinished)
	_, err = g.CallUno(ids[1])
	assert.ErrorIs(t, err, ErrRoundFinished)
}

func TestUnoPenaltyCollectedNextTurn(t *testing.T) {
	rules := clockless()
	rules.EnforceUnoPenalty = true
	g, ids, mb := setupTestGame(t, 2, rules, 16)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1"), card(models.ColorRed, "2", "red-2-1")},
	)

	_, err := g.PlayCard(ids[0], "red-9-1")
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, 1)

	// The missed call is collected once the opponent acts.
	_, err = g.DrawCard(ids[1])
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, 3, "two-card penalty for the missed call")

	penalties := mb.eventsOfType(EventUnoPenalty)
	require.Len(t, penalties, 1)
	assert.Equal(t, ids[0], penalties[0].User.ID)
}

func TestUnoCallInTimeAvoidsPenalty(t *testing.T) {
	rules := clockless()
	rules.EnforceUnoPenalty = true
	g, ids, _ := setupTestGame(t, 2, rules, 17)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1"), card(models.ColorRed, "2", "red-2-1")},
	)

	_, err := g.PlayCard(ids[0], "red-9-1")
	require.NoError(t, err)
	_, err = g.CallUno(ids[0])
	require.NoError(t, err)

	_, err = g.DrawCard(ids[1])
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, 1, "a timely call clears the debt")
}

func TestUnoPenaltyDisabledByDefault(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 18)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1"), card(models.ColorRed, "2", "red-2-1")},
	)

	_, err := g.PlayCard(ids[0], "red-9-1")
	require.NoError(t, err)
	_, err = g.DrawCard(ids[1])
	require.NoError(t, err)
	assert.Len(t, g.Players[0].Hand, 1)
}

func TestEarnCardJoinsHand(t *testing.T) {
	g, ids, mb := setupTestGame(t, 2, clockless(), 19)
	before := len(g.Players[1].Hand)
	bonus := card(models.ColorGreen, "7", "bonus-green-7-1")

	st, err := g.EarnCard(ids[1], bonus)
	require.NoError(t, err)
	assert.Len(t, g.Players[1].Hand, before+1)
	assert.Equal(t, ids[0], st.CurrentPlayerID, "earning a card does not touch the turn")

	priv := mb.private[ids[1]]
	require.NotEmpty(t, priv)
	assert.Equal(t, "bonus-green-7-1", priv[len(priv)-1].Card.ID)
}

func TestDeckRecyclesDiscardMinusTop(t *testing.T) {
	g, ids, mb := setupTestGame(t, 2, clockless(), 20)
	setTable(g, card(models.ColorRed, "3", "red-3-1"),
		[]models.Card{card(models.ColorBlue, "9", "blue-9-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)
	g.Mu.Lock()
	g.Deck.cards = nil
	g.DiscardPile = []models.Card{
		card(models.ColorRed, "1", "red-1-1"),
		card(models.ColorRed, "2", "red-2-1"),
		card(models.ColorRed, "3", "red-3-1"),
	}
	g.Mu.Unlock()

	st, err := g.DrawCard(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "red-3-1", st.DiscardTop.ID, "top card stays on the pile")
	assert.Equal(t, 1, st.DiscardSize)
	assert.Equal(t, 1, st.DeckSize, "two recycled, one drawn")
	assert.Len(t, g.Players[0].Hand, 2)
	assert.NotEmpty(t, mb.eventsOfType(EventDeckRecycled))
}

func TestDrawWithBothPilesEmpty(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 21)
	setTable(g, card(models.ColorRed, "3", "red-3-1"),
		[]models.Card{card(models.ColorBlue, "9", "blue-9-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)
	g.Mu.Lock()
	g.Deck.cards = nil
	g.Mu.Unlock()

	_, err := g.DrawCard(ids[0])
	assert.ErrorIs(t, err, ErrDeckExhausted)
	assert.Len(t, g.Players[0].Hand, 1, "failed draw leaves the hand alone")
	assert.Equal(t, 0, g.CurrentPlayerIndex, "failed draw does not end the turn")
}

func TestTurnClockForcesDraw(t *testing.T) {
	rules := clockless()
	rules.TurnClockSec = 2
	g, ids, _ := setupTestGame(t, 3, rules, 22)
	before := len(g.Players[0].Hand)

	g.Tick()
	assert.Equal(t, 0, g.CurrentPlayerIndex, "one second left")

	g.Tick()
	assert.Len(t, g.Players[0].Hand, before+1, "stalled player draws")
	assert.Equal(t, ids[1], g.Players[g.CurrentPlayerIndex].ID)
	assert.Equal(t, 2, g.TurnClockRemaining, "clock rearms for the next player")
}

func TestTurnClockForcesColorChoice(t *testing.T) {
	rules := clockless()
	rules.TurnClockSec = 1
	g, ids, _ := setupTestGame(t, 2, rules, 23)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{
			card(models.ColorWild, models.ValueWild, "wild-2"),
			card(models.ColorGreen, "3", "green-3-1"),
			card(models.ColorGreen, "7", "green-7-1"),
			card(models.ColorRed, "2", "red-2-1"),
		},
		[]models.Card{card(models.ColorBlue, "4", "blue-4-1")},
	)

	_, err := g.PlayCard(ids[0], "wild-2")
	require.NoError(t, err)

	g.Tick()
	assert.Equal(t, PhaseAwaitingPlay, g.Phase)
	assert.Equal(t, models.ColorGreen, g.ActiveColor, "forced choice picks the dominant hand color")
	assert.Equal(t, ids[1], g.Players[g.CurrentPlayerIndex].ID)
}

func TestRoundClockExpiryLowestScoreWins(t *testing.T) {
	rules := clockless()
	rules.RoundClockSec = 1
	g, ids, _ := setupTestGame(t, 3, rules, 24)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorWild, models.ValueWild, "wild-3")},
		[]models.Card{card(models.ColorRed, "3", "red-3-1")},
		[]models.Card{card(models.ColorBlue, "9", "blue-9-1"), card(models.ColorBlue, "2", "blue-2-1")},
	)

	g.Tick()
	assert.Equal(t, PhaseRoundFinished, g.Phase)
	assert.Equal(t, ids[1], g.Winner, "3 points beats 50 and 11")
	assert.Equal(t, 61, g.Players[1].Score, "winner collects the other hands")
}

func TestRoundClockTieBreaksOnFewerCards(t *testing.T) {
	rules := clockless()
	rules.RoundClockSec = 1
	g, ids, _ := setupTestGame(t, 2, rules, 25)
	setTable(g, card(models.ColorRed, "9", "red-9-2"),
		[]models.Card{card(models.ColorRed, "5", "red-5-1"), card(models.ColorRed, "0", "red-0")},
		[]models.Card{card(models.ColorBlue, "5", "blue-5-1")},
	)

	g.Tick()
	assert.Equal(t, ids[1], g.Winner, "equal scores break on hand size")
}

func TestTurnNeverLandsOnSamePlayer(t *testing.T) {
	g, ids, _ := setupTestGame(t, 4, clockless(), 26)
	for turn := 0; turn < 12; turn++ {
		current := g.Players[g.CurrentPlayerIndex].ID
		_, err := g.DrawCard(current)
		require.NoError(t, err)
		assert.NotEqual(t, current, g.Players[g.CurrentPlayerIndex].ID)
	}
	// Plain draws walk the seats in order.
	assert.Equal(t, ids[0], g.Players[g.CurrentPlayerIndex].ID)
}

func TestSnapshotHidesOtherHands(t *testing.T) {
	g, ids, _ := setupTestGame(t, 3, clockless(), 27)
	st := g.SnapshotFor(ids[1])

	currentTurns := 0
	for _, ps := range st.Players {
		if ps.IsCurrentTurn {
			currentTurns++
		}
		if ps.ID == ids[1] {
			assert.Len(t, ps.Hand, 7, "viewer sees their own cards")
		} else {
			assert.Nil(t, ps.Hand, "other hands stay hidden")
			assert.Equal(t, 7, ps.HandSize)
		}
	}
	assert.Equal(t, 1, currentTurns)
}

func TestHandleIntentRouting(t *testing.T) {
	g, ids, _ := setupTestGame(t, 2, clockless(), 28)
	setTable(g, card(models.ColorRed, "5", "red-5-1"),
		[]models.Card{card(models.ColorRed, "9", "red-9-1"), card(models.ColorBlue, "3", "blue-3-1")},
		[]models.Card{card(models.ColorGreen, "4", "green-4-1")},
	)

	st, err := g.HandleIntent(ids[0], models.GameIntent{
		Type:    "play_card",
		Payload: map[string]interface{}{"id": "red-9-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "red-9-1", st.DiscardTop.ID)

	_, err = g.HandleIntent(ids[1], models.GameIntent{Type: "draw_card"})
	assert.NoError(t, err)

	_, err = g.HandleIntent(ids[0], models.GameIntent{Type: "shout"})
	assert.ErrorIs(t, err, ErrIllegalCard)
}

func TestDisconnectKeepsRoundRunning(t *testing.T) {
	rules := clockless()
	rules.TurnClockSec = 1
	g, ids, _ := setupTestGame(t, 2, rules, 29)

	g.HandleDisconnect(ids[0])
	assert.False(t, g.Players[0].Connected)
	assert.Equal(t, PhaseAwaitingPlay, g.Phase)

	// The clock plays for the absent player.
	before := len(g.Players[0].Hand)
	g.Tick()
	assert.Len(t, g.Players[0].Hand, before+1)
	assert.Equal(t, ids[1], g.Players[g.CurrentPlayerIndex].ID)
}

// internal/game/game.go
package game

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/codeuno/server/internal/cache"
	"github.com/codeuno/server/internal/models"
)

// Phase is the turn state machine position.
type Phase string

const (
	PhaseAwaitingPlay        Phase = "awaiting_play"
	PhaseAwaitingColorChoice Phase = "awaiting_color_choice"
	PhaseRoundFinished       Phase = "round_finished"
)

// GameEventType identifies a transient notification broadcast to clients.
type GameEventType string

const (
	EventCardPlayed    GameEventType = "card_played"
	EventCardDrawn     GameEventType = "card_drawn"
	EventUnoCalled     GameEventType = "uno_called"
	EventUnoPenalty    GameEventType = "uno_penalty"
	EventColorChosen   GameEventType = "color_chosen"
	EventCardEarned    GameEventType = "card_earned"
	EventDeckRecycled  GameEventType = "deck_recycled"
	EventPlayerTurn    GameEventType = "player_turn"
	EventRoundFinished GameEventType = "round_finished"
	EventSyncState     GameEventType = "sync_state"
)

// EventUser identifies the acting player inside a GameEvent.
type EventUser struct {
	ID uuid.UUID `json:"id"`
}

// GameEvent carries no authoritative state beyond the snapshot; it exists
// for toasts and animations.
type GameEvent struct {
	Type    GameEventType          `json:"type"`
	User    *EventUser             `json:"user,omitempty"`
	Card    *models.Card           `json:"card,omitempty"`
	Color   models.Color           `json:"color,omitempty"`
	Payload map[string]interface{} `json:"payload,omitempty"`
	State   *GameState             `json:"state,omitempty"`
}

// OnRoundEndFunc receives the final result so the room layer can persist
// scores and flip the room status.
type OnRoundEndFunc func(roomPIN string, winner uuid.UUID, scores map[uuid.UUID]int)

// UnoGame holds the authoritative state for one round in one room. All
// mutating operations serialize on Mu; the clock goroutine is the only
// autonomous source of change and goes through the same lock.
type UnoGame struct {
	ID      uuid.UUID
	RoomPIN string
	Rules   RoomRules

	Players     []*models.Player
	Deck        *Deck
	DiscardPile []models.Card

	CurrentPlayerIndex int
	Direction          int          // +1 clockwise, -1 counter-clockwise
	ActiveColor        models.Color // set iff the top discard is wild and chosen
	Phase              Phase
	TurnID             int

	// Wild color choice in flight. The wild card is already on the discard
	// pile; the turn is held until the player who played it picks a color.
	pendingWildPlayer uuid.UUID
	pendingDrawFour   bool

	// unoDebtorID is a player down to one card who has not called UNO.
	// The debt is collected when the next player's turn is underway.
	unoDebtorID uuid.UUID

	RoundClockRemaining int
	TurnClockRemaining  int

	Started bool
	Winner  uuid.UUID

	rng          *rand.Rand
	clockStop    chan struct{}
	clockStopped bool
	actionIndex  int

	Mu sync.Mutex

	// BroadcastFn sends an event to every player in the room.
	BroadcastFn func(ev GameEvent)
	// BroadcastToPlayerFn sends an event to a single player.
	BroadcastToPlayerFn func(playerID uuid.UUID, ev GameEvent)
	// OnRoundEnd is invoked once when the round reaches its terminal state.
	OnRoundEnd OnRoundEndFunc
}

// NewUnoGame builds a round for the given roster. The roster order is the
// seating order; the first participant plays first. rng may be seeded for
// deterministic tests; pass nil for a time-seeded source.
func NewUnoGame(roomPIN string, roster []models.Participant, rules RoomRules) *UnoGame {
	return NewUnoGameWithRand(roomPIN, roster, rules, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewUnoGameWithRand is NewUnoGame with an explicit random source.
func NewUnoGameWithRand(roomPIN string, roster []models.Participant, rules RoomRules, rng *rand.Rand) *UnoGame {
	id, _ := uuid.NewRandom()
	g := &UnoGame{
		ID:        id,
		RoomPIN:   roomPIN,
		Rules:     rules,
		Direction: 1,
		Phase:     PhaseAwaitingPlay,
		rng:       rng,
		clockStop: make(chan struct{}),
	}
	for _, part := range roster {
		g.Players = append(g.Players, &models.Player{
			ID:        part.UserID,
			Username:  part.Username,
			Connected: true,
			Language:  part.Language,
		})
	}
	return g
}

// Start deals hands, flips the first discard, arms the clocks, and begins
// play with the first seated player. The seed card's action effect is not
// applied; wild flips are shuffled back until a chromatic card seeds the
// pile, which keeps the active-color invariant trivially true at start.
func (g *UnoGame) Start() error {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started || g.Phase == PhaseRoundFinished {
		return nil
	}
	g.Deck = NewDeck(g.rng)
	if err := g.Deck.Deal(g.Players, g.Rules.HandSize); err != nil {
		return err
	}
	for {
		seed, err := g.Deck.DrawOne()
		if err != nil {
			return err
		}
		if !seed.IsWild() {
			g.DiscardPile = append(g.DiscardPile, seed)
			break
		}
		g.Deck.Recycle([]models.Card{seed})
	}

	g.CurrentPlayerIndex = 0
	g.Started = true
	g.RoundClockRemaining = g.Rules.RoundClockSec
	g.TurnClockRemaining = g.Rules.TurnClockSec
	g.logAction(uuid.Nil, "round_start", map[string]interface{}{"players": len(g.Players)})

	if g.Rules.TurnClockSec > 0 || g.Rules.RoundClockSec > 0 {
		go g.runClock()
	}
	g.fireEvent(GameEvent{
		Type: EventPlayerTurn,
		User: &EventUser{ID: g.Players[g.CurrentPlayerIndex].ID},
	})
	return nil
}

// runClock drives Tick once per second until the round finishes.
func (g *UnoGame) runClock() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-g.clockStop:
			return
		case <-ticker.C:
			g.Tick()
		}
	}
}

// PlayCard validates and applies a play intent for the current player.
func (g *UnoGame) PlayCard(playerID uuid.UUID, cardID string) (*GameState, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase == PhaseRoundFinished {
		return nil, ErrRoundFinished
	}
	player := g.getPlayerByID(playerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.Phase == PhaseAwaitingColorChoice {
		// The wild already played must be given a color first.
		return nil, ErrIllegalCard
	}
	idx := player.HoldsCard(cardID)
	if idx < 0 {
		return nil, ErrIllegalCard
	}
	card := player.Hand[idx]
	if !IsLegalPlay(card, g.topDiscard(), g.ActiveColor) {
		return nil, ErrIllegalCard
	}

	g.collectUnoDebt(playerID)

	player.Hand = append(player.Hand[:idx], player.Hand[idx+1:]...)
	g.DiscardPile = append(g.DiscardPile, card)
	g.logAction(playerID, string(EventCardPlayed), map[string]interface{}{"cardId": card.ID})
	g.fireEvent(GameEvent{
		Type: EventCardPlayed,
		User: &EventUser{ID: playerID},
		Card: &card,
	})

	if len(player.Hand) == 0 {
		g.finishRound(player)
		return g.snapshotFor(playerID), nil
	}
	if len(player.Hand) == 1 && !player.HasCalledUno {
		g.unoDebtorID = playerID
	}

	if card.IsWild() {
		// Hold the turn until a color is chosen.
		g.Phase = PhaseAwaitingColorChoice
		g.pendingWildPlayer = playerID
		g.pendingDrawFour = card.Value == models.ValueWildDrawFour
		g.ActiveColor = ""
		g.TurnClockRemaining = g.Rules.TurnClockSec
		return g.snapshotFor(playerID), nil
	}

	g.ActiveColor = ""
	g.resolveEffectAndAdvance(card)
	return g.snapshotFor(playerID), nil
}

// ChooseColor resolves a pending wild. Only the player who played the wild
// may choose, and only while the choice is pending.
func (g *UnoGame) ChooseColor(playerID uuid.UUID, color models.Color) (*GameState, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if err := g.chooseColorLocked(playerID, color); err != nil {
		return nil, err
	}
	return g.snapshotFor(playerID), nil
}

func (g *UnoGame) chooseColorLocked(playerID uuid.UUID, color models.Color) error {
	if g.Phase == PhaseRoundFinished {
		return ErrRoundFinished
	}
	if g.Phase != PhaseAwaitingColorChoice || g.pendingWildPlayer != playerID {
		return ErrInvalidColorChoice
	}
	if !models.ValidChosenColor(color) {
		return ErrInvalidColorChoice
	}

	g.ActiveColor = color
	wasDrawFour := g.pendingDrawFour
	g.Phase = PhaseAwaitingPlay
	g.pendingWildPlayer = uuid.Nil
	g.pendingDrawFour = false

	g.logAction(playerID, string(EventColorChosen), map[string]interface{}{"color": color})
	g.fireEvent(GameEvent{
		Type:  EventColorChosen,
		User:  &EventUser{ID: playerID},
		Color: color,
	})

	if wasDrawFour {
		g.penalizeNextPlayer(4)
		g.advanceTurn(2)
	} else {
		g.advanceTurn(1)
	}
	return nil
}

// DrawCard draws one card for the current player and ends their turn. The
// drawn card is never auto-played.
func (g *UnoGame) DrawCard(playerID uuid.UUID) (*GameState, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase == PhaseRoundFinished {
		return nil, ErrRoundFinished
	}
	player := g.getPlayerByID(playerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	if g.Phase != PhaseAwaitingPlay || g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ErrNotYourTurn
	}

	g.collectUnoDebt(playerID)

	drawn, err := g.drawWithRecycle(1)
	if err != nil {
		return nil, err
	}
	g.giveCards(player, drawn)
	g.fireEvent(GameEvent{
		Type:    EventCardDrawn,
		User:    &EventUser{ID: playerID},
		Payload: map[string]interface{}{"count": 1, "deckSize": g.Deck.Size()},
	})
	g.fireEventToPlayer(playerID, GameEvent{
		Type: EventCardDrawn,
		Card: &drawn[0],
	})
	g.logAction(playerID, string(EventCardDrawn), map[string]interface{}{"cardId": drawn[0].ID})

	g.advanceTurn(1)
	return g.snapshotFor(playerID), nil
}

// CallUno marks the caller's UNO declaration. It is accepted at any time;
// whether the call was timely only matters for the penalty check.
func (g *UnoGame) CallUno(playerID uuid.UUID) (*GameState, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase == PhaseRoundFinished {
		return nil, ErrRoundFinished
	}
	player := g.getPlayerByID(playerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	player.HasCalledUno = true
	if g.unoDebtorID == playerID {
		g.unoDebtorID = uuid.Nil
	}
	g.logAction(playerID, string(EventUnoCalled), nil)
	g.fireEvent(GameEvent{
		Type: EventUnoCalled,
		User: &EventUser{ID: playerID},
	})
	return g.snapshotFor(playerID), nil
}

// EarnCard inserts a trivia bonus card into the player's hand. No legality
// check applies; the card joins the hand like a drawn card.
func (g *UnoGame) EarnCard(playerID uuid.UUID, card models.Card) (*GameState, error) {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Phase == PhaseRoundFinished {
		return nil, ErrRoundFinished
	}
	player := g.getPlayerByID(playerID)
	if player == nil {
		return nil, ErrUnknownPlayer
	}
	g.giveCards(player, []models.Card{card})
	g.logAction(playerID, string(EventCardEarned), map[string]interface{}{"cardId": card.ID})
	g.fireEvent(GameEvent{
		Type:    EventCardEarned,
		User:    &EventUser{ID: playerID},
		Payload: map[string]interface{}{"handSize": len(player.Hand)},
	})
	g.fireEventToPlayer(playerID, GameEvent{
		Type: EventCardEarned,
		Card: &card,
	})
	return g.snapshotFor(playerID), nil
}

// Tick decrements both clocks by one second. A spent turn clock forces an
// implicit draw for the stalling player; a spent round clock ends the round
// on points.
func (g *UnoGame) Tick() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.Phase == PhaseRoundFinished {
		return
	}

	if g.Rules.RoundClockSec > 0 {
		g.RoundClockRemaining--
		if g.RoundClockRemaining <= 0 {
			g.finishRoundOnClock()
			return
		}
	}
	if g.Rules.TurnClockSec <= 0 {
		return
	}
	g.TurnClockRemaining--
	if g.TurnClockRemaining > 0 {
		return
	}

	current := g.Players[g.CurrentPlayerIndex]
	if g.Phase == PhaseAwaitingColorChoice {
		// Stalled color choice: pick the wild player's dominant hand color.
		if err := g.chooseColorLocked(g.pendingWildPlayer, g.dominantColor(current)); err != nil {
			log.Printf("game %s: forced color choice failed: %v", g.ID, err)
		}
		return
	}

	// A player who stalls forfeits the turn by drawing.
	drawn, err := g.drawWithRecycle(1)
	if err != nil {
		// Nothing left to draw anywhere; skip the turn instead.
		g.advanceTurn(1)
		return
	}
	g.giveCards(current, drawn)
	g.logAction(current.ID, "turn_clock_draw", map[string]interface{}{"cardId": drawn[0].ID})
	g.fireEvent(GameEvent{
		Type:    EventCardDrawn,
		User:    &EventUser{ID: current.ID},
		Payload: map[string]interface{}{"count": 1, "forced": true},
	})
	g.advanceTurn(1)
}

// HandleIntent routes a decoded UI intent to the matching operation.
func (g *UnoGame) HandleIntent(playerID uuid.UUID, intent models.GameIntent) (*GameState, error) {
	switch intent.Type {
	case "play_card":
		cardID, _ := intent.Payload["id"].(string)
		return g.PlayCard(playerID, cardID)
	case "choose_color":
		color, _ := intent.Payload["color"].(string)
		return g.ChooseColor(playerID, models.Color(color))
	case "draw_card":
		return g.DrawCard(playerID)
	case "call_uno":
		return g.CallUno(playerID)
	default:
		return nil, ErrIllegalCard
	}
}

// HandleDisconnect marks the player disconnected. The round keeps running;
// their turn clock will force draws on their behalf.
func (g *UnoGame) HandleDisconnect(playerID uuid.UUID) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	if p := g.getPlayerByID(playerID); p != nil {
		p.Connected = false
		p.Conn = nil
		g.logAction(playerID, "player_disconnect", nil)
	}
}

// HandleReconnect reattaches a connection and replays the current state.
func (g *UnoGame) HandleReconnect(playerID uuid.UUID, conn *websocket.Conn) {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	p := g.getPlayerByID(playerID)
	if p == nil {
		return
	}
	p.Connected = true
	p.Conn = conn
	g.logAction(playerID, "player_reconnect", nil)
	g.fireEventToPlayer(playerID, GameEvent{
		Type:  EventSyncState,
		State: g.snapshotFor(playerID),
	})
}

// --- internal helpers, lock held ---

func (g *UnoGame) topDiscard() models.Card {
	return g.DiscardPile[len(g.DiscardPile)-1]
}

func (g *UnoGame) getPlayerByID(playerID uuid.UUID) *models.Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// giveCards appends cards to a hand and voids any standing UNO call, since
// the hand no longer holds exactly one card.
func (g *UnoGame) giveCards(p *models.Player, cards []models.Card) {
	p.Hand = append(p.Hand, cards...)
	p.HasCalledUno = false
	if g.unoDebtorID == p.ID {
		g.unoDebtorID = uuid.Nil
	}
}

// drawWithRecycle draws n cards, recycling the discard pile (minus its top
// card) into the draw pile if the pile runs dry. ErrDeckExhausted only
// when the recycle cannot cover the request either.
func (g *UnoGame) drawWithRecycle(n int) ([]models.Card, error) {
	if g.Deck.Size() < n && len(g.DiscardPile) > 1 {
		top := g.topDiscard()
		recycled := make([]models.Card, len(g.DiscardPile)-1)
		copy(recycled, g.DiscardPile[:len(g.DiscardPile)-1])
		g.DiscardPile = []models.Card{top}
		g.Deck.Recycle(recycled)
		g.logAction(uuid.Nil, string(EventDeckRecycled), map[string]interface{}{"deckSize": g.Deck.Size()})
		g.fireEvent(GameEvent{
			Type:    EventDeckRecycled,
			Payload: map[string]interface{}{"deckSize": g.Deck.Size()},
		})
	}
	return g.Deck.Draw(n)
}

// penalizeNextPlayer makes the next player in direction draw count cards.
// If the piles cannot cover the full count, they draw what remains.
func (g *UnoGame) penalizeNextPlayer(count int) {
	victim := g.Players[g.nextIndex(1)]
	drawn, err := g.drawWithRecycle(count)
	if err != nil {
		if remaining := g.Deck.Size(); remaining > 0 {
			drawn, _ = g.Deck.Draw(remaining)
		}
	}
	if len(drawn) == 0 {
		return
	}
	g.giveCards(victim, drawn)
	g.logAction(victim.ID, "penalty_draw", map[string]interface{}{"count": len(drawn)})
	g.fireEvent(GameEvent{
		Type:    EventCardDrawn,
		User:    &EventUser{ID: victim.ID},
		Payload: map[string]interface{}{"count": len(drawn), "penalty": true},
	})
	for i := range drawn {
		g.fireEventToPlayer(victim.ID, GameEvent{Type: EventCardDrawn, Card: &drawn[i]})
	}
}

// collectUnoDebt applies the missed-call penalty once the next player's
// turn is underway. A debtor who called in time has already been cleared.
func (g *UnoGame) collectUnoDebt(actorID uuid.UUID) {
	if g.unoDebtorID == uuid.Nil || g.unoDebtorID == actorID {
		return
	}
	debtor := g.getPlayerByID(g.unoDebtorID)
	g.unoDebtorID = uuid.Nil
	if debtor == nil || len(debtor.Hand) != 1 || debtor.HasCalledUno {
		return
	}
	if !g.Rules.EnforceUnoPenalty {
		return
	}
	drawn, err := g.drawWithRecycle(g.Rules.UnoPenaltyCount)
	if err != nil {
		return
	}
	g.giveCards(debtor, drawn)
	g.logAction(debtor.ID, string(EventUnoPenalty), map[string]interface{}{"count": len(drawn)})
	g.fireEvent(GameEvent{
		Type:    EventUnoPenalty,
		User:    &EventUser{ID: debtor.ID},
		Payload: map[string]interface{}{"count": len(drawn)},
	})
}

// resolveEffectAndAdvance applies a chromatic action effect and moves the
// turn. Reverse with two players collapses to a skip.
func (g *UnoGame) resolveEffectAndAdvance(card models.Card) {
	switch card.Value {
	case models.ValueSkip:
		g.advanceTurn(2)
	case models.ValueReverse:
		g.Direction = -g.Direction
		if len(g.Players) == 2 {
			g.advanceTurn(2)
		} else {
			g.advanceTurn(1)
		}
	case models.ValueDrawTwo:
		g.penalizeNextPlayer(2)
		g.advanceTurn(2)
	default:
		g.advanceTurn(1)
	}
}

// nextIndex computes the seat step positions away in the current direction,
// wrapped into [0, len(players)).
func (g *UnoGame) nextIndex(step int) int {
	n := len(g.Players)
	return ((g.CurrentPlayerIndex+step*g.Direction)%n + n) % n
}

func (g *UnoGame) advanceTurn(step int) {
	g.CurrentPlayerIndex = g.nextIndex(step)
	g.TurnID++
	g.TurnClockRemaining = g.Rules.TurnClockSec
	g.fireEvent(GameEvent{
		Type:    EventPlayerTurn,
		User:    &EventUser{ID: g.Players[g.CurrentPlayerIndex].ID},
		Payload: map[string]interface{}{"turn": g.TurnID},
	})
}

// dominantColor picks the most frequent chromatic color in a hand, falling
// back to red. Used only for forced color choices on timeout.
func (g *UnoGame) dominantColor(p *models.Player) models.Color {
	counts := map[models.Color]int{}
	for _, c := range p.Hand {
		if !c.IsWild() {
			counts[c.Color]++
		}
	}
	best := models.ColorRed
	bestCount := 0
	for _, color := range models.ChromaticColors {
		if counts[color] > bestCount {
			best = color
			bestCount = counts[color]
		}
	}
	return best
}

// finishRound ends the round with winner having emptied their hand. The
// winner scores the sum of every other hand's point value.
func (g *UnoGame) finishRound(winner *models.Player) {
	total := 0
	scores := make(map[uuid.UUID]int)
	for _, p := range g.Players {
		hs := HandScore(p.Hand)
		scores[p.ID] = hs
		if p.ID != winner.ID {
			total += hs
		}
	}
	winner.Score += total
	g.endRound(winner.ID, total, scores, "hand_empty")
}

// finishRoundOnClock ends the round when the round clock expires: the
// lowest hand score wins, ties broken by fewest cards, then seating order.
// The winner is awarded the other hands' total, same as a played-out win.
func (g *UnoGame) finishRoundOnClock() {
	winner := g.Players[0]
	for _, p := range g.Players[1:] {
		ps, ws := HandScore(p.Hand), HandScore(winner.Hand)
		if ps < ws || (ps == ws && len(p.Hand) < len(winner.Hand)) {
			winner = p
		}
	}
	total := 0
	scores := make(map[uuid.UUID]int)
	for _, p := range g.Players {
		hs := HandScore(p.Hand)
		scores[p.ID] = hs
		if p.ID != winner.ID {
			total += hs
		}
	}
	winner.Score += total
	g.endRound(winner.ID, total, scores, "round_clock")
}

// endRound moves to the terminal phase, stops the clock goroutine, and
// notifies everyone. Safe to reach from any phase exactly once.
func (g *UnoGame) endRound(winnerID uuid.UUID, awarded int, scores map[uuid.UUID]int, reason string) {
	if g.Phase == PhaseRoundFinished {
		return
	}
	g.Phase = PhaseRoundFinished
	g.Winner = winnerID
	g.pendingWildPlayer = uuid.Nil
	g.unoDebtorID = uuid.Nil
	if !g.clockStopped {
		g.clockStopped = true
		close(g.clockStop)
	}

	scoreStrs := make(map[string]int, len(scores))
	for id, s := range scores {
		scoreStrs[id.String()] = s
	}
	g.logAction(uuid.Nil, string(EventRoundFinished), map[string]interface{}{
		"winner":  winnerID,
		"awarded": awarded,
		"reason":  reason,
	})
	g.fireEvent(GameEvent{
		Type: EventRoundFinished,
		User: &EventUser{ID: winnerID},
		Payload: map[string]interface{}{
			"winnerId": winnerID.String(),
			"awarded":  awarded,
			"scores":   scoreStrs,
			"reason":   reason,
		},
	})
	if g.OnRoundEnd != nil {
		g.OnRoundEnd(g.RoomPIN, winnerID, scores)
	}
}

func (g *UnoGame) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

func (g *UnoGame) fireEventToPlayer(playerID uuid.UUID, ev GameEvent) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}

// logAction queues the action for the replay/audit log. Fire and forget;
// the round never blocks on Redis.
func (g *UnoGame) logAction(actorID uuid.UUID, actionType string, payload map[string]interface{}) {
	g.actionIndex++
	if payload == nil {
		payload = map[string]interface{}{}
	}
	record := cache.RoundActionRecord{
		RoundID:       g.ID,
		RoomPIN:       g.RoomPIN,
		ActionIndex:   g.actionIndex,
		ActorUserID:   actorID,
		ActionType:    actionType,
		ActionPayload: payload,
		Timestamp:     time.Now().UnixMilli(),
	}
	go func(rec cache.RoundActionRecord) {
		if cache.Rdb == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.PublishRoundAction(ctx, rec); err != nil {
			log.Printf("game %s: action log publish failed: %v", rec.RoundID, err)
		}
	}(record)
}

// internal/handlers/api_server.go
package handlers

import (
	"context"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/codeuno/server/internal/database"
	"github.com/codeuno/server/internal/game"
	"github.com/codeuno/server/internal/models"
	"github.com/codeuno/server/internal/trivia"
)

// GameServer owns the live rounds and the trivia service.
type GameServer struct {
	GameStore *game.GameStore
	Trivia    *trivia.Service
	Logger    *logrus.Logger
}

func NewGameServer(logger *logrus.Logger) *GameServer {
	return &GameServer{
		GameStore: game.NewGameStore(),
		Trivia:    trivia.NewService(),
		Logger:    logger,
	}
}

// StartRound fetches the room roster and spins up a round for it.
func (gs *GameServer) StartRound(ctx context.Context, pin string, rules game.RoomRules) (*game.UnoGame, error) {
	roster, err := database.FetchParticipants(ctx, pin)
	if err != nil {
		return nil, err
	}

	g := game.NewUnoGame(pin, roster, rules)
	g.BroadcastFn = gs.makeBroadcastFn(g)
	g.BroadcastToPlayerFn = gs.makeBroadcastToPlayerFn(g)
	g.OnRoundEnd = func(roomPIN string, winner uuid.UUID, scores map[uuid.UUID]int) {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := database.StoreRoundResult(ctx, g.ID, roomPIN, winner, scores); err != nil {
				gs.Logger.Warnf("failed to persist round result for room %s: %v", roomPIN, err)
			}
			if err := database.UpdateRoomStatus(ctx, roomPIN, models.RoomFinished); err != nil {
				gs.Logger.Warnf("failed to update room %s status: %v", roomPIN, err)
			}
		}()
	}

	gs.GameStore.AddGame(g)
	if err := g.Start(); err != nil {
		gs.GameStore.DeleteGame(pin)
		return nil, err
	}
	if err := database.UpdateRoomStatus(ctx, pin, models.RoomPlaying); err != nil {
		gs.Logger.Warnf("failed to update room %s status: %v", pin, err)
	}
	return g, nil
}

// makeBroadcastFn sends an event to every connected player in the round.
func (gs *GameServer) makeBroadcastFn(g *game.UnoGame) func(ev game.GameEvent) {
	return func(ev game.GameEvent) {
		data := encodeEvent(ev, gs.Logger)
		for _, p := range g.Players {
			if p.Conn == nil {
				continue
			}
			gs.writeWS(p.Conn, data)
		}
	}
}

// makeBroadcastToPlayerFn sends an event to one player only.
func (gs *GameServer) makeBroadcastToPlayerFn(g *game.UnoGame) func(playerID uuid.UUID, ev game.GameEvent) {
	return func(playerID uuid.UUID, ev game.GameEvent) {
		for _, p := range g.Players {
			if p.ID != playerID || p.Conn == nil {
				continue
			}
			gs.writeWS(p.Conn, encodeEvent(ev, gs.Logger))
			return
		}
	}
}

func (gs *GameServer) writeWS(conn *websocket.Conn, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		gs.Logger.Debugf("ws write failed: %v", err)
	}
}

// broadcastSnapshots pushes a per-viewer snapshot to every player. Called
// after each accepted intent so all clients converge.
func (gs *GameServer) broadcastSnapshots(g *game.UnoGame) {
	for _, p := range g.Players {
		if p.Conn == nil {
			continue
		}
		ev := game.GameEvent{
			Type:  game.EventSyncState,
			State: g.SnapshotFor(p.ID),
		}
		gs.writeWS(p.Conn, encodeEvent(ev, gs.Logger))
	}
}

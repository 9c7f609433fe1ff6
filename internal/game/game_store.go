package game

import "sync"

// GameStore maps room PINs to their live round. One round per room.
type GameStore struct {
	mu    sync.Mutex
	games map[string]*UnoGame
}

func NewGameStore() *GameStore {
	return &GameStore{games: make(map[string]*UnoGame)}
}

func (s *GameStore) AddGame(g *UnoGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.RoomPIN] = g
}

func (s *GameStore) GetGame(roomPIN string) (*UnoGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[roomPIN]
	return g, ok
}

func (s *GameStore) DeleteGame(roomPIN string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, roomPIN)
}

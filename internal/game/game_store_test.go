// internal/game/game_store_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStoreLifecycle(t *testing.T) {
	s := NewGameStore()

	_, ok := s.GetGame("123456")
	assert.False(t, ok)

	g := NewUnoGameWithRand("123456", nil, clockless(), testRand(1))
	s.AddGame(g)

	got, ok := s.GetGame("123456")
	require.True(t, ok)
	assert.Same(t, g, got)

	s.DeleteGame("123456")
	_, ok = s.GetGame("123456")
	assert.False(t, ok)
}

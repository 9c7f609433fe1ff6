// internal/trivia/trivia.go
package trivia

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/codeuno/server/internal/models"
)

// Service hands out coding challenges and mints bonus cards for correct
// answers. The card carries a "bonus-" id so it can never collide with a
// deck card's deterministic id.
type Service struct {
	mu     sync.Mutex
	rng    *rand.Rand
	minted int
}

func NewService() *Service {
	return NewServiceWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewServiceWithRand(rng *rand.Rand) *Service {
	return &Service{rng: rng}
}

// PickChallenge returns a random challenge for the player's preferred
// language, falling back to python when the language has no bank.
func (s *Service) PickChallenge(language string) models.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	bank, ok := challengeBank[language]
	if !ok || len(bank) == 0 {
		bank = challengeBank["python"]
	}
	return bank[s.rng.Intn(len(bank))]
}

// CheckAnswer compares the submitted answer against the challenge key.
// Comparison is case-insensitive and whitespace-trimmed; trivia content
// correctness beyond that is out of scope.
func (s *Service) CheckAnswer(challenge models.Challenge, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(challenge.Answer))
}

// MintBonusCard produces a random card descriptor to insert into the
// winner's hand. Roughly matches the deck distribution: mostly digits,
// sometimes an action, rarely a wild.
func (s *Service) MintBonusCard() models.Card {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.minted++

	roll := s.rng.Intn(108)
	var color models.Color
	var value string
	switch {
	case roll < 8: // wilds: 8 of 108
		color = models.ColorWild
		if roll < 4 {
			value = models.ValueWild
		} else {
			value = models.ValueWildDrawFour
		}
	case roll < 32: // chromatic actions: 24 of 108
		color = models.ChromaticColors[s.rng.Intn(len(models.ChromaticColors))]
		value = []string{models.ValueSkip, models.ValueReverse, models.ValueDrawTwo}[s.rng.Intn(3)]
	default:
		color = models.ChromaticColors[s.rng.Intn(len(models.ChromaticColors))]
		value = fmt.Sprintf("%d", s.rng.Intn(10))
	}
	return models.Card{
		ID:    fmt.Sprintf("bonus-%s-%s-%d", color, value, s.minted),
		Color: color,
		Value: value,
	}
}

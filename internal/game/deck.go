// internal/game/deck.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/codeuno/server/internal/models"
)

// DeckSize is the card count of a freshly built UNO deck.
const DeckSize = 108

// Deck is the draw pile. It is not safe for concurrent use; the owning
// UnoGame serializes access under its own lock.
type Deck struct {
	cards []models.Card
	rng   *rand.Rand
}

// NewDeck builds a full 108-card deck and shuffles it with the given source.
// Tests pass a fixed seed for determinism; production uses a time seed.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: buildCards(), rng: rng}
	d.shuffle(d.cards)
	return d
}

// buildCards constructs the standard distribution: per chromatic color one
// "0", two each of "1".."9", two each of Skip/Reverse/Draw Two, plus four
// Wild and four Wild Draw Four. IDs encode color, value, and occurrence.
func buildCards() []models.Card {
	cards := make([]models.Card, 0, DeckSize)
	for _, color := range models.ChromaticColors {
		cards = append(cards, models.Card{ID: fmt.Sprintf("%s-0", color), Color: color, Value: "0"})
		for n := 1; n <= 9; n++ {
			v := fmt.Sprintf("%d", n)
			cards = append(cards,
				models.Card{ID: fmt.Sprintf("%s-%s-1", color, v), Color: color, Value: v},
				models.Card{ID: fmt.Sprintf("%s-%s-2", color, v), Color: color, Value: v},
			)
		}
		for _, v := range []string{models.ValueSkip, models.ValueReverse, models.ValueDrawTwo} {
			cards = append(cards,
				models.Card{ID: fmt.Sprintf("%s-%s-1", color, v), Color: color, Value: v},
				models.Card{ID: fmt.Sprintf("%s-%s-2", color, v), Color: color, Value: v},
			)
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, models.Card{ID: fmt.Sprintf("wild-%d", i), Color: models.ColorWild, Value: models.ValueWild})
		cards = append(cards, models.Card{ID: fmt.Sprintf("wild-draw-%d", i), Color: models.ColorWild, Value: models.ValueWildDrawFour})
	}
	return cards
}

// shuffle applies a Fisher-Yates pass: every permutation equally likely.
func (d *Deck) shuffle(cards []models.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Size returns the number of cards remaining in the draw pile.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Draw removes and returns n cards from the front of the pile. It returns
// ErrDeckExhausted without consuming anything if fewer than n remain; the
// caller is expected to recycle the discard pile and retry.
func (d *Deck) Draw(n int) ([]models.Card, error) {
	if len(d.cards) < n {
		return nil, ErrDeckExhausted
	}
	drawn := make([]models.Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn, nil
}

// DrawOne removes and returns the top card.
func (d *Deck) DrawOne() (models.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return models.Card{}, err
	}
	return cards[0], nil
}

// Deal distributes perPlayer cards to each player in roster order.
func (d *Deck) Deal(players []*models.Player, perPlayer int) error {
	if len(d.cards) < len(players)*perPlayer {
		return ErrDeckExhausted
	}
	for _, p := range players {
		hand, err := d.Draw(perPlayer)
		if err != nil {
			return err
		}
		p.Hand = hand
	}
	return nil
}

// Recycle shuffles the given cards (the discard pile minus its top card)
// back into the draw pile.
func (d *Deck) Recycle(cards []models.Card) {
	d.cards = append(d.cards, cards...)
	d.shuffle(d.cards)
}

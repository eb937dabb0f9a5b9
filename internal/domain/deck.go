package domain

import (
	"errors"
	"fmt"
)

var (
	ErrCardNotInDeck = errors.New("card not in deck")
	ErrDeckEmpty     = errors.New("deck is empty")
)

// Deck is the ordered set of cards still available to draw.
type Deck []Card

// NewDeck returns the 52-card deck ordered by suit then rank.
func NewDeck() Deck {
	deck := make(Deck, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// Remove returns a copy of the deck without the first card matching c.
// The relative order of the remaining cards is kept.
func (d Deck) Remove(c Card) (Deck, error) {
	for i, dc := range d {
		if dc == c {
			out := make(Deck, 0, len(d)-1)
			out = append(out, d[:i]...)
			return append(out, d[i+1:]...), nil
		}
	}
	return d, fmt.Errorf("%w: %s", ErrCardNotInDeck, c.Code())
}

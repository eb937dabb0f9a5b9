package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRank     = errors.New("invalid rank")
	ErrInvalidCardCode = errors.New("invalid card code")
)

// Suit is one of the four French suits.
type Suit string

const (
	Spades   Suit = "Spades"
	Hearts   Suit = "Hearts"
	Clubs    Suit = "Clubs"
	Diamonds Suit = "Diamonds"
)

// Suits lists the suits in deck-building order.
var Suits = []Suit{Spades, Hearts, Clubs, Diamonds}

// Initial returns the single-letter suit code ("S","H","C","D").
func (s Suit) Initial() string {
	if s == "" {
		return ""
	}
	return string(s[0])
}

// Rank is the face of a card: "A", "2".."10", "J", "Q", "K".
type Rank string

// Ranks lists the thirteen ranks in deck-building order.
var Ranks = []Rank{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

const Ace Rank = "A"

var rankValues = map[Rank]int{
	"A": 11, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
	"8": 8, "9": 9, "10": 10, "J": 10, "Q": 10, "K": 10,
}

var suitsByInitial = map[byte]Suit{'S': Spades, 'H': Hearts, 'C': Clubs, 'D': Diamonds}

// ValueForRank returns the score contribution of a rank. Aces count 11 here;
// Hand.Score resolves them down to 1 when needed.
func ValueForRank(r Rank) (int, error) {
	v, ok := rankValues[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRank, string(r))
	}
	return v, nil
}

// Card is an immutable playing card. Its value is derived from the rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard validates the rank and suit and returns the card.
func NewCard(s Suit, r Rank) (Card, error) {
	if _, err := ValueForRank(r); err != nil {
		return Card{}, err
	}
	switch s {
	case Spades, Hearts, Clubs, Diamonds:
	default:
		return Card{}, fmt.Errorf("%w: unknown suit %q", ErrInvalidCardCode, string(s))
	}
	return Card{Suit: s, Rank: r}, nil
}

// Value is the card's score contribution.
func (c Card) Value() int {
	v, _ := ValueForRank(c.Rank)
	return v
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Code returns the fixed two-character storage code: rank then suit
// initial, with ten written as "T" (e.g. "KH", "TS", "AD").
func (c Card) Code() string {
	r := string(c.Rank)
	if c.Rank == "10" {
		r = "T"
	}
	return r + c.Suit.Initial()
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ParseCard decodes a card code. Both "TS" and the legacy "10S" are accepted
// for tens.
func ParseCard(code string) (Card, error) {
	if len(code) < 2 || len(code) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardCode, code)
	}
	suit, ok := suitsByInitial[code[len(code)-1]]
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCardCode, code)
	}
	rank := Rank(code[:len(code)-1])
	if rank == "T" {
		rank = "10"
	}
	c, err := NewCard(suit, rank)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %w", ErrInvalidCardCode, code, err)
	}
	return c, nil
}

// ParseCards decodes a slice of card codes, stopping at the first bad one.
func ParseCards(codes []string) ([]Card, error) {
	out := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// CardCodes encodes cards in order.
func CardCodes(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Code())
	}
	return out
}

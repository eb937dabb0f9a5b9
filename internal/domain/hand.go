package domain

// Blackjack is the target score.
const Blackjack = 21

// Rand is the randomness source used to pick cards. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}

// Hand is an ordered set of cards in draw order.
type Hand []Card

// Score sums card values and then counts aces as 1 instead of 11, one ace
// at a time, for as long as the total is over 21.
func (h Hand) Score() int {
	total, aces := 0, 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	for ; aces > 0 && total > Blackjack; aces-- {
		total -= 10
	}
	return total
}

// Draw moves one random card from deck into the hand. A hand already at 21
// or above is returned unchanged. Neither input is modified.
func (h Hand) Draw(deck Deck, rng Rand) (Hand, Deck, error) {
	if h.Score() >= Blackjack {
		return h, deck, nil
	}
	if len(deck) == 0 {
		return h, deck, ErrDeckEmpty
	}

	card := deck[rng.Intn(len(deck))]
	rest, err := deck.Remove(card)
	if err != nil {
		return h, deck, err
	}

	out := make(Hand, 0, len(h)+1)
	out = append(out, h...)
	return append(out, card), rest, nil
}

// Clone returns an independent copy of the hand.
func (h Hand) Clone() Hand {
	return append(Hand(nil), h...)
}

// Codes encodes the hand for storage.
func (h Hand) Codes() []string {
	return CardCodes(h)
}

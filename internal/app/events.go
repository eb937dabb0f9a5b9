package app

import (
	"iter"

	"blackjack/internal/domain"
)

// EventKind identifies display events emitted by a turn.
type EventKind string

const (
	EventHandsShown      EventKind = "hands_shown"
	EventDealerRevealing EventKind = "dealer_revealing"
	EventDealerDrew      EventKind = "dealer_drew"
	EventAwaitingAction  EventKind = "awaiting_action"
	EventGameEnded       EventKind = "game_ended"
)

// Event is a display instruction produced by the turn controller.
type Event struct {
	Kind    EventKind
	Payload any
}

// HandsPayload is carried by EventHandsShown and EventDealerDrew.
type HandsPayload struct {
	Dealer      domain.Hand
	Player      domain.Hand
	ConcealHole bool
}

// MessagePayload is carried by EventDealerRevealing and EventAwaitingAction.
type MessagePayload struct {
	Text string
}

// GameEndedPayload is carried by EventGameEnded.
type GameEndedPayload struct {
	Outcome Outcome
	Message string
}

// Turn is the result of one turn-controller transition.
type Turn struct {
	// Session is the state to persist. It is already reset when Outcome is terminal.
	Session *domain.Session
	Outcome Outcome
	// GameID identifies the game the turn belongs to, even once it has ended.
	GameID string

	// Player and Dealer are the hands as they stood when the turn finished.
	Player      domain.Hand
	Dealer      domain.Hand
	ConcealHole bool

	events iter.Seq[Event]
}

// Events yields the turn's display events in order. Frames are built only as
// the sequence is consumed, and stopping early is allowed.
func (t *Turn) Events() iter.Seq[Event] {
	if t.events == nil {
		return func(func(Event) bool) {}
	}
	return t.events
}

func handsEvent(kind EventKind, dealer, player domain.Hand, conceal bool) Event {
	return Event{
		Kind: kind,
		Payload: HandsPayload{
			Dealer:      dealer[:len(dealer):len(dealer)],
			Player:      player[:len(player):len(player)],
			ConcealHole: conceal,
		},
	}
}

func messageEvent(kind EventKind, text string) Event {
	return Event{Kind: kind, Payload: MessagePayload{Text: text}}
}

func endedEvent(o Outcome) Event {
	return Event{Kind: EventGameEnded, Payload: GameEndedPayload{Outcome: o, Message: o.Message()}}
}

// closingEvent is the last event of a player-turn step: the result when the
// game is over, otherwise the hit-or-stand prompt.
func closingEvent(o Outcome) Event {
	if o.Terminal() {
		return endedEvent(o)
	}
	return messageEvent(EventAwaitingAction, PromptHitOrStand)
}

package nakama

import (
	"fmt"
	"strings"

	"blackjack/internal/app"
	"blackjack/internal/domain"
	"blackjack/internal/ports"

	"google.golang.org/protobuf/types/known/structpb"
)

const hiddenCardCode = "??"

func handToMap(hand domain.Hand, score int) map[string]interface{} {
	cards := make([]interface{}, 0, len(hand))
	for _, c := range hand {
		cards = append(cards, c.Code())
	}
	return map[string]interface{}{
		"cards": cards,
		"score": score,
	}
}

func dealerToMap(dealer domain.Hand, concealHole bool) map[string]interface{} {
	shown, score := ports.VisibleDealer(dealer, concealHole)
	concealed := len(shown) < len(dealer)
	m := handToMap(shown, score)
	if concealed {
		m["cards"] = append(m["cards"].([]interface{}), hiddenCardCode)
	}
	m["concealed"] = concealed
	return m
}

func statsToMap(stats domain.Stats) map[string]interface{} {
	return map[string]interface{}{
		"wins":   stats.Wins,
		"losses": stats.Losses,
		"ties":   stats.Ties,
	}
}

// handsToStruct builds the notification body for a hands frame.
func handsToStruct(dealer, player domain.Hand, concealHole bool, maxLen int) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"dealer": dealerToMap(dealer, concealHole),
		"player": handToMap(player, player.Score()),
		"text":   ports.TruncateMessage(handsText(dealer, player, concealHole), maxLen),
	})
}

// turnToStruct builds the RPC response for a finished command.
func turnToStruct(turn *app.Turn) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"game_id": turn.GameID,
		"active":  turn.Session.Active,
		"outcome": string(turn.Outcome),
		"message": turn.Outcome.Message(),
		"player":  handToMap(turn.Player, turn.Player.Score()),
		"dealer":  dealerToMap(turn.Dealer, turn.ConcealHole),
		"stats":   statsToMap(turn.Session.Stats),
	})
}

// sessionToStruct builds the RPC response for a status query.
func sessionToStruct(session *domain.Session) (*structpb.Struct, error) {
	message := ""
	if session.Active {
		message = app.PromptHitOrStand
	}
	return structpb.NewStruct(map[string]interface{}{
		"game_id": session.GameID,
		"active":  session.Active,
		"outcome": string(app.OutcomeNone),
		"message": message,
		"player":  handToMap(session.Player, session.Player.Score()),
		"dealer":  dealerToMap(session.Dealer, session.Active),
		"stats":   statsToMap(session.Stats),
	})
}

// handsText is the plain-text rendering of a hands frame.
func handsText(dealer, player domain.Hand, concealHole bool) string {
	shown, dealerScore := ports.VisibleDealer(dealer, concealHole)
	dealerCards := shown.Codes()
	if len(shown) < len(dealer) {
		dealerCards = append(dealerCards, hiddenCardCode)
	}
	return fmt.Sprintf("Dealer: %s (%d)\nPlayer: %s (%d)",
		strings.Join(dealerCards, " "), dealerScore,
		strings.Join(player.Codes(), " "), player.Score())
}

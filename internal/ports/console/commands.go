package console

import "strings"

// Command is a table action typed at the console.
type Command string

const (
	CommandPlay   Command = "play"
	CommandHit    Command = "hit"
	CommandStand  Command = "stand"
	CommandStatus Command = "status"
	CommandQuit   Command = "quit"
)

var commandAliases = map[string]Command{
	"play":       CommandPlay,
	"start_game": CommandPlay,
	"hit":        CommandHit,
	"draw_card":  CommandHit,
	"stand":      CommandStand,
	"stay":       CommandStand,
	"end_turn":   CommandStand,
	"status":     CommandStatus,
	"quit":       CommandQuit,
	"exit":       CommandQuit,
}

// ParseCommand reads one input line. The "dealer" and "d" prefixes are
// optional, case is ignored.
func ParseCommand(line string) (Command, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) > 0 && (fields[0] == "dealer" || fields[0] == "d") {
		fields = fields[1:]
	}
	if len(fields) != 1 {
		return "", false
	}
	cmd, ok := commandAliases[fields[0]]
	return cmd, ok
}

package chat

import "strings"

type CommandKind int

const (
	KindNone CommandKind = iota
	KindHelp
	KindTerminate
	KindJoin
	KindMessage
	KindUnknown
	KindInvalidUsage
	KindRoomTooLong
	KindUserTooLong
)

func (k CommandKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindHelp:
		return "help"
	case KindTerminate:
		return "terminate"
	case KindJoin:
		return "join"
	case KindMessage:
		return "message"
	case KindUnknown:
		return "unknown"
	case KindInvalidUsage:
		return "invalid_usage"
	case KindRoomTooLong:
		return "room_too_long"
	case KindUserTooLong:
		return "user_too_long"
	default:
		return "unknown"
	}
}

// Command is the classification of one input line.
type Command struct {
	Kind CommandKind
	Room string
	User string
	Text string
}

// Interpret classifies a line against the session state. While InRoom a line
// whose sole token is quit/exit still terminates; every other non-empty line
// is free text and the command grammar only applies Unjoined.
// Classification is pure, no replies are produced here.
func Interpret(state State, line string, maxRoom, maxUser int) Command {
	if state == StateInRoom {
		if line == "" {
			return Command{Kind: KindNone}
		}
		if fields := strings.Fields(line); len(fields) == 1 &&
			(strings.EqualFold(fields[0], "quit") || strings.EqualFold(fields[0], "exit")) {
			return Command{Kind: KindTerminate}
		}
		return Command{Kind: KindMessage, Text: line}
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: KindNone}
	}

	verb := fields[0]
	switch {
	case strings.EqualFold(verb, "help"):
		return Command{Kind: KindHelp}
	case strings.EqualFold(verb, "quit"), strings.EqualFold(verb, "exit"):
		return Command{Kind: KindTerminate}
	case strings.EqualFold(verb, "join"):
		if len(fields) != 3 {
			return Command{Kind: KindInvalidUsage}
		}
		room, user := fields[1], fields[2]
		if len(room) > maxRoom {
			return Command{Kind: KindRoomTooLong, Room: room}
		}
		if len(user) > maxUser {
			return Command{Kind: KindUserTooLong, User: user}
		}
		return Command{Kind: KindJoin, Room: room, User: user}
	default:
		return Command{Kind: KindUnknown}
	}
}

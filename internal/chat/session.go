package chat

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/andy6609/room-chat-server/internal/config"
)

const helpText = "Available commands:\n" +
	"\thelp - Show this message\n" +
	"\tjoin {roomname} {username} - Join a room with a username\n" +
	"\tquit - Disconnect from the server\n" +
	"\texit - Disconnect from the server"

// HandleSession pumps the read-interpret-act loop for one connection until
// the peer disconnects or terminates. It owns the session exclusively; the
// registry is the only shared state it touches.
func HandleSession(s *Session, reg *Registry, cfg *config.Config, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	s.startWriter()

	sendLine(s, "Welcome!")
	sendLine(s, "Type 'help' for commands.")

	reader := NewLineReader(s.Conn, cfg.MaxLine)

loop:
	for {
		line, err := reader.ReadLine()
		if err == ErrLineTooLong {
			sendLine(s, fmt.Sprintf("Line is too long. Max length is: %d.", cfg.MaxLine))
			MessagesTotal.WithLabelValues("oversized").Inc()
			continue
		}
		if err != nil {
			// EOF and read errors both end the session like a quit.
			if err != io.EOF {
				logger.Debug("read failed", "id", s.ID, "addr", s.Addr, "error", err)
			}
			break
		}

		cmd := Interpret(s.State, line, cfg.MaxRoomname, cfg.MaxUsername)
		switch cmd.Kind {
		case KindNone:
			continue
		case KindMessage:
			reg.BroadcastRoom(s, s.Username+": "+cmd.Text)
		case KindHelp:
			sendLine(s, helpText)
		case KindJoin:
			reg.SetRoom(s.Slot, cmd.Room, cmd.User)
			sendLine(s, fmt.Sprintf("Joining room %s as %s", cmd.Room, cmd.User))
			reg.BroadcastRoom(s, cmd.User+" has joined the room")
			logger.Info("user joined room", "id", s.ID, "room", cmd.Room, "username", cmd.User)
		case KindTerminate:
			sendLine(s, "Goodbye!")
			MessagesTotal.WithLabelValues(cmd.Kind.String()).Inc()
			break loop
		case KindUnknown:
			sendLine(s, "Unknown command. Type 'help' for available commands.")
		case KindInvalidUsage:
			sendLine(s, "Usage: join <room_name> <user_name>")
		case KindRoomTooLong:
			sendLine(s, fmt.Sprintf("Room name '%s' is too long. Max length is: %d.", cmd.Room, cfg.MaxRoomname))
		case KindUserTooLong:
			sendLine(s, fmt.Sprintf("Username '%s' is too long. Max length is: %d.", cmd.User, cfg.MaxUsername))
		}
		MessagesTotal.WithLabelValues(cmd.Kind.String()).Inc()
	}

	if s.State == StateInRoom {
		reg.BroadcastRoom(s, s.Username+" has left the room")
	}
	reg.Remove(s.Slot)
	s.State = StateClosed

	// Let the writer flush anything still queued (the goodbye line) before
	// the transport goes away.
	close(s.Done)
	<-s.writerDone
	_ = s.Conn.Close()

	logger.Info("client disconnected", "id", s.ID, "addr", s.Addr, "active", reg.Len(), "capacity", reg.Cap())
}

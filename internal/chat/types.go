package chat

import (
	"net"

	uuid "github.com/satori/go.uuid"
)

// State describes where a session is in its lifecycle. A session starts
// Unjoined, may move to InRoom exactly once per join, and ends Closed.
type State int

const (
	StateUnjoined State = iota
	StateInRoom
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnjoined:
		return "unjoined"
	case StateInRoom:
		return "in_room"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is the server-side state for one connected client. The worker
// goroutine that accepted the connection owns every field; State, Username
// and Roomname are additionally read by broadcast snapshots and therefore
// only mutated under the registry lock.
type Session struct {
	ID       string // connection id for log correlation
	Slot     int    // registry slot, -1 until registered
	Conn     net.Conn
	Addr     string
	State    State
	Username string
	Roomname string

	Out  chan string   // outbound lines, written to the socket by the writer goroutine
	Done chan struct{} // closed by the worker to stop the writer

	writerDone chan struct{}
}

func NewSession(conn net.Conn) *Session {
	return &Session{
		ID:         uuid.NewV4().String(),
		Slot:       -1,
		Conn:       conn,
		Addr:       conn.RemoteAddr().String(),
		Out:        make(chan string, 32),
		Done:       make(chan struct{}),
		writerDone: make(chan struct{}),
	}
}

// ErrLineTooLong reports a line that exceeded the configured maximum. The
// offending line is discarded and reading resumes at the next one.
var ErrLineTooLong = errorString("line exceeds maximum length")

type errorString string

func (e errorString) Error() string { return string(e) }

package chat

import (
	"log/slog"
	"sync"
)

// Registry is the bounded table of active sessions. A single mutex guards
// every slot access; the lock is never held across a socket operation.
type Registry struct {
	mu     sync.Mutex
	slots  []*Session
	logger *slog.Logger
}

func NewRegistry(capacity int, logger *slog.Logger) *Registry {
	if capacity <= 0 {
		capacity = 64
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		slots:  make([]*Session, capacity),
		logger: logger,
	}
}

func (r *Registry) Cap() int {
	return len(r.slots)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countLocked()
}

// TryAdd occupies the first free slot for the session. The capacity check
// and the slot claim happen under one lock acquisition, so concurrent adds
// can never exceed capacity. Returns false when the registry is full; the
// caller must reject and close the connection.
func (r *Registry) TryAdd(s *Session) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, occupant := range r.slots {
		if occupant == nil {
			r.slots[i] = s
			s.Slot = i
			ConnectedClients.Set(float64(r.countLocked()))
			return i, true
		}
	}
	return -1, false
}

// Remove frees the slot for reuse. Removing an empty or out-of-range slot
// is a no-op.
func (r *Registry) Remove(slot int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot >= len(r.slots) || r.slots[slot] == nil {
		return
	}
	r.slots[slot] = nil
	ConnectedClients.Set(float64(r.countLocked()))
}

// SetRoom transitions the slot's session to InRoom. Room-visible fields are
// only mutated here so that broadcast snapshots never observe a half-joined
// session.
func (r *Registry) SetRoom(slot int, room, user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slot < 0 || slot >= len(r.slots) || r.slots[slot] == nil {
		return
	}
	s := r.slots[slot]
	s.State = StateInRoom
	s.Roomname = room
	s.Username = user
}

// SnapshotRoomMembers returns a point-in-time copy of every InRoom session
// whose room matches, excluding excludeSlot. Delivery happens outside the
// lock; a member joining or leaving after the snapshot may miss the message,
// which is accepted.
func (r *Registry) SnapshotRoomMembers(room string, excludeSlot int) []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	var members []*Session
	for i, s := range r.slots {
		if s == nil || i == excludeSlot {
			continue
		}
		if s.State == StateInRoom && s.Roomname == room {
			members = append(members, s)
		}
	}
	return members
}

// CloseAll closes the transport of every registered session so blocked
// readers unblock with end-of-stream. Workers run their own cleanup.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.slots {
		if s == nil {
			continue
		}
		if err := s.Conn.Close(); err != nil {
			r.logger.Debug("close on shutdown", "id", s.ID, "error", err)
		}
	}
}

func (r *Registry) countLocked() int {
	n := 0
	for _, s := range r.slots {
		if s != nil {
			n++
		}
	}
	return n
}

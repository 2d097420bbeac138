package chat

// BroadcastRoom delivers a fully formatted message to every other member of
// the sender's room. Members are snapshotted under the lock, then delivery
// runs lock-free against each recipient's outbound channel. A failed or slow
// recipient never surfaces to the sender; its own worker notices the broken
// connection on the next read.
func (r *Registry) BroadcastRoom(sender *Session, msg string) {
	members := r.SnapshotRoomMembers(sender.Roomname, sender.Slot)
	for _, m := range members {
		sendLine(m, msg)
	}
	BroadcastRecipients.Observe(float64(len(members)))
}

func sendLine(s *Session, line string) {
	// Non-blocking send prevents a stalled recipient from blocking the sender.
	select {
	case s.Out <- line:
	default:
		// Drop when the recipient's buffer is full.
	}
}

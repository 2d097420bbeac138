package chat

import "bufio"

// startWriter launches the goroutine that owns all socket writes for this
// session. Broadcasters and the session's own worker both enqueue on Out;
// serializing writes here keeps concurrent deliveries from interleaving on
// the wire. When Done closes, pending lines are flushed before exit.
func (s *Session) startWriter() {
	go func() {
		defer close(s.writerDone)
		w := bufio.NewWriter(s.Conn)
		for {
			select {
			case <-s.Done:
				s.drain(w)
				return
			case msg := <-s.Out:
				if !writeLine(w, msg) {
					return
				}
			}
		}
	}()
}

func (s *Session) drain(w *bufio.Writer) {
	for {
		select {
		case msg := <-s.Out:
			if !writeLine(w, msg) {
				return
			}
		default:
			return
		}
	}
}

func writeLine(w *bufio.Writer, msg string) bool {
	// Best-effort. If the connection breaks, just stop the writer.
	if _, err := w.WriteString(msg + "\n"); err != nil {
		return false
	}
	return w.Flush() == nil
}

package chat

import (
	"log/slog"
	"net"

	"github.com/andy6609/room-chat-server/internal/config"
)

type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	reg      *Registry
	listener net.Listener
}

func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		reg:    NewRegistry(cfg.MaxClients, logger),
	}
}

func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	go s.acceptLoop(ln)

	s.logger.Info("server started", "addr", ln.Addr().String(), "capacity", s.reg.Cap())
	return nil
}

// Addr returns the bound listen address, useful when the port was 0.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Stop closes the listener and every registered connection. Workers unblock
// with end-of-stream and run their own cleanup; Stop does not wait for them.
func (s *Server) Stop() {
	s.logger.Info("shutting down")

	if s.listener != nil {
		s.listener.Close()
	}
	s.reg.CloseAll()

	s.logger.Info("shutdown complete")
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			// listener closed, normal shutdown
			return
		}

		sess := NewSession(conn)
		if _, ok := s.reg.TryAdd(sess); !ok {
			RejectedConnections.Inc()
			s.logger.Warn("client rejected, server full",
				"addr", sess.Addr, "active", s.reg.Len(), "capacity", s.reg.Cap())
			_, _ = conn.Write([]byte("Server full. Try again later.\n"))
			_ = conn.Close()
			continue
		}

		s.logger.Info("client connected",
			"id", sess.ID, "addr", sess.Addr, "active", s.reg.Len(), "capacity", s.reg.Cap())
		go HandleSession(sess, s.reg, s.cfg, s.logger)
	}
}

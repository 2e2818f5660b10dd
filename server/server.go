// Package server wires the Leader-Follower acceptor pool (C6) to the
// per-algorithm Active Objects and sender stage (C7), and owns the
// listener lifecycle (C9).
package server

import (
	"net"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/brandonshearin/graphqueryd/algo"
	"github.com/brandonshearin/graphqueryd/pipeline"
)

// Config holds the values the CLI layer collects before constructing a
// Server (§4.13).
type Config struct {
	// Port is the TCP port to listen on.
	Port int
	// Threads is the size of the acceptor pool. Defaults to the host's
	// CPU count if <= 0, per §5's "T acceptor workers (default: CPU
	// count, minimum 1)".
	Threads int
	// WMax bounds sampled edge weights in random-mode requests.
	WMax int

	Logger zerolog.Logger
}

// Server owns the listening socket, the six Active Objects, and the
// acceptor pool that feeds them.
type Server struct {
	cfg      Config
	log      zerolog.Logger
	listener net.Listener

	sender *pipeline.SenderActiveObject
	aos    map[string]*pipeline.AlgorithmActiveObject
	pool   *acceptorPool
}

// New constructs a Server from cfg without binding a socket yet.
func New(cfg Config) *Server {
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.NumCPU()
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.WMax <= 0 {
		cfg.WMax = 100
	}

	log := cfg.Logger
	sender := pipeline.NewSenderActiveObject(log)

	aos := make(map[string]*pipeline.AlgorithmActiveObject, len(algo.Names()))
	for _, name := range algo.Names() {
		aos[name] = pipeline.NewAlgorithmActiveObject(name, sender.Mailbox(), log)
	}

	return &Server{
		cfg:    cfg,
		log:    log,
		sender: sender,
		aos:    aos,
	}
}

// ListenAndServe binds the configured port, starts the six Active
// Objects and the acceptor pool, and blocks until the listener is
// closed via Shutdown.
func (s *Server) ListenAndServe() error {
	ln, err := Bind(s.cfg.Port)
	if err != nil {
		return err
	}
	s.listener = ln

	go s.sender.Run()
	for _, ao := range s.aos {
		go ao.Run()
	}

	s.pool = newAcceptorPool(ln, s.cfg.Threads, s.cfg.WMax, s.aos, s.log)
	s.log.Info().Int("port", s.cfg.Port).Int("threads", s.cfg.Threads).Msg("listener bound")
	s.pool.Start()
	s.pool.Wait()
	return nil
}

// Shutdown closes the listener, which unblocks every acceptor worker's
// pending Accept, and then closes every stage mailbox so the Active
// Object goroutines drain and exit.
func (s *Server) Shutdown() error {
	var err error
	if s.listener != nil {
		err = s.listener.Close()
	}
	if s.pool != nil {
		s.pool.Wait()
	}
	for _, ao := range s.aos {
		ao.Mailbox().Close()
	}
	s.sender.Mailbox().Close()
	return err
}

package server

import (
	"bufio"
	"errors"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/brandonshearin/graphqueryd/internal/reqerr"
	"github.com/brandonshearin/graphqueryd/pipeline"
	"github.com/brandonshearin/graphqueryd/request"
)

// acceptorPool implements the Leader-Follower pattern of §4.9: T worker
// goroutines share one listener, but a single hasLeader flag plus
// condition variable ensures at most one of them ever blocks inside
// Accept at a time. The worker that accepts a connection promotes a
// follower *before* doing any per-connection work, so handoff latency is
// bounded by the time between Accept returning and the woken follower
// resuming.
type acceptorPool struct {
	listener net.Listener
	workers  int
	wmax     int
	log      zerolog.Logger

	stages map[string]*pipeline.AlgorithmActiveObject

	mu        sync.Mutex
	cond      *sync.Cond
	hasLeader bool

	wg sync.WaitGroup
}

func newAcceptorPool(listener net.Listener, workers, wmax int, stages map[string]*pipeline.AlgorithmActiveObject, log zerolog.Logger) *acceptorPool {
	p := &acceptorPool{
		listener: listener,
		workers:  workers,
		wmax:     wmax,
		stages:   stages,
		log:      log,
	}
	p.cond = sync.NewCond(&p.mu)
	return p
}

// Start launches the worker pool and returns immediately; workers run
// until the listener is closed.
func (p *acceptorPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.workerLoop()
		}()
	}
}

// Wait blocks until every worker has exited (the listener closed).
func (p *acceptorPool) Wait() { p.wg.Wait() }

func (p *acceptorPool) workerLoop() {
	for {
		p.becomeLeader()

		conn, err := p.listener.Accept()

		p.stepDown()

		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			// A transient accept error (e.g. a one-off EMFILE) leaves the
			// listener usable; log and let this worker try again.
			p.log.Warn().Err(err).Msg("accept failed, retrying")
			continue
		}

		p.handle(conn)
	}
}

// becomeLeader blocks until no other worker holds the leader role, then
// claims it (step 1 of §4.9).
func (p *acceptorPool) becomeLeader() {
	p.mu.Lock()
	for p.hasLeader {
		p.cond.Wait()
	}
	p.hasLeader = true
	p.mu.Unlock()
}

// stepDown releases the leader role and wakes exactly one waiting
// follower (step 3 of §4.9), before this worker does any per-connection
// work.
func (p *acceptorPool) stepDown() {
	p.mu.Lock()
	p.hasLeader = false
	p.mu.Unlock()
	p.cond.Signal()
}

// handle parses the request inline and hands it to the matching
// algorithm's mailbox (step 4 of §4.9). Parse errors are written back to
// the client directly, since no Request exists yet to enqueue anywhere.
func (p *acceptorPool) handle(conn net.Conn) {
	client := newConnectionHandle(conn)
	reader := bufio.NewReader(conn)

	req, err := request.Parse(reader, client, p.wmax)
	if err != nil {
		p.log.Warn().Str("remote", client.RemoteAddr()).Err(err).Msg("request rejected")
		_, _ = client.Write([]byte(reqerr.Line(err) + "\n"))
		_ = client.Close()
		return
	}

	p.log.Info().Str("id", req.ID.String()).Str("remote", client.RemoteAddr()).Str("algorithm", req.Algorithm).Msg("accepted connection")

	stage, ok := p.stages[req.Algorithm]
	if !ok {
		// Parse already validates req.Algorithm with algo.Lookup, so
		// this would only trip if the pool were wired with a partial
		// stage map.
		p.log.Error().Str("id", req.ID.String()).Str("algorithm", req.Algorithm).Msg("no stage for algorithm")
		_ = client.Close()
		return
	}
	stage.Mailbox().Enqueue(req)
}

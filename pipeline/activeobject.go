package pipeline

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brandonshearin/graphqueryd/algo"
	"github.com/brandonshearin/graphqueryd/graph"
	"github.com/brandonshearin/graphqueryd/request"
)

// AlgorithmActiveObject is one of the five long-lived per-algorithm
// workers of C7: it owns a mailbox of Requests, runs the matching
// Capability from the strategy registry, assembles the response body
// (with the optional adjacency prefix), and hands a SendTask to the
// sender stage. Any allocation failure while assembling the body is
// fatal to the process, per §4.10; Go reports that as an out-of-memory
// panic rather than a recoverable error, so no code path here attempts
// to catch it.
type AlgorithmActiveObject struct {
	name    string
	mailbox *Mailbox[*request.Request]
	sender  *Mailbox[*request.SendTask]
	log     zerolog.Logger
}

// NewAlgorithmActiveObject wires a named stage to the shared sender
// mailbox every algorithm AO feeds into.
func NewAlgorithmActiveObject(name string, sender *Mailbox[*request.SendTask], log zerolog.Logger) *AlgorithmActiveObject {
	return &AlgorithmActiveObject{
		name:    name,
		mailbox: NewMailbox[*request.Request](),
		sender:  sender,
		log:     log.With().Str("stage", name).Logger(),
	}
}

// Mailbox returns the stage's inbox, for the acceptor pool to enqueue
// into.
func (ao *AlgorithmActiveObject) Mailbox() *Mailbox[*request.Request] { return ao.mailbox }

// Run is the stage's worker loop: it blocks on the mailbox until a
// Request arrives or the mailbox is closed, at which point Run returns.
// Intended to be started once, in its own goroutine, at process startup.
func (ao *AlgorithmActiveObject) Run() {
	for {
		req, ok := ao.mailbox.Dequeue()
		if !ok {
			return
		}
		ao.process(req)
	}
}

func (ao *AlgorithmActiveObject) process(req *request.Request) {
	capability, ok := algo.Lookup(req.Algorithm)
	if !ok {
		// The parser already rejects unknown algorithms before a Request
		// ever reaches a mailbox; reaching this branch would mean a stage
		// was wired to the wrong name.
		ao.log.Error().Str("id", req.ID.String()).Str("algorithm", req.Algorithm).Msg("no capability registered for algorithm")
		return
	}

	var body strings.Builder
	if req.WantPrint {
		body.WriteString(adjacencyText(req.Graph))
	}

	emit := func(line string) {
		body.WriteString(line)
		body.WriteByte('\n')
	}
	capability(req.Graph, emit)

	ao.log.Debug().Str("id", req.ID.String()).Msg("algorithm complete")

	ao.sender.Enqueue(&request.SendTask{
		ID:     req.ID,
		Client: req.Client,
		Text:   body.String(),
	})
}

// adjacencyText renders the "Graph: V=..., E=...\nAdjacency matrix:\n..."
// prefix byte-identical to the server's view of g after construction
// (§6, Testable Property 10).
func adjacencyText(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("Graph: V=")
	b.WriteString(strconv.Itoa(g.V()))
	b.WriteString(", E=")
	b.WriteString(strconv.Itoa(g.E()))
	b.WriteString("\nAdjacency matrix:\n")

	for u := 0; u < g.V(); u++ {
		row := g.AdjacencyRow(u)
		for _, bit := range row {
			b.WriteString(strconv.Itoa(bit))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

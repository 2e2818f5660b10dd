// Package request parses the wire protocol's header and edge lines into
// a validated Request, and generates random graphs for seeded requests.
package request

import (
	"github.com/google/uuid"

	"github.com/brandonshearin/graphqueryd/graph"
)

// ConnectionHandle is the narrow surface the pipeline needs from a client
// connection: enough to write a response, close exactly once, and log a
// remote address. net.Conn does not satisfy it directly (its RemoteAddr
// returns a net.Addr), so the server wraps each connection in an adapter;
// tests substitute an in-memory fake.
type ConnectionHandle interface {
	Write(p []byte) (int, error)
	Close() error
	RemoteAddr() string
}

// Request is the parsed, validated unit of work handed from the acceptor
// into the algorithm's mailbox. Whichever stage currently holds it owns
// the embedded Graph exclusively; ownership moves through the pipeline
// with the Request itself, never shared across stages concurrently.
type Request struct {
	ID        uuid.UUID
	Algorithm string
	WantPrint bool
	Graph     *graph.Graph
	Client    ConnectionHandle
}

// SendTask is produced by an algorithm stage and consumed by the sender
// stage, which writes Text to Client and then closes it.
type SendTask struct {
	ID     uuid.UUID
	Client ConnectionHandle
	Text   string
}

// Package reqerr defines the sentinel errors a request can fail with
// before it ever reaches an algorithm stage. Each sentinel carries the
// literal "ERR ..." text the parser writes back to the client; callers
// distinguish the taxonomy with xerrors.Is rather than string matching.
package reqerr

import "golang.org/x/xerrors"

// Sentinel base values. Parser functions wrap one of these with Wrap to
// attach the specific response line while keeping xerrors.Is(err, ErrX)
// true after wrapping.
var (
	// ErrUsage covers a malformed header line or unrecognized flag.
	ErrUsage = xerrors.New("usage error")
	// ErrRange covers V/E/seed bounds violations.
	ErrRange = xerrors.New("range error")
	// ErrEdgeLine covers a malformed or out-of-range explicit-mode edge
	// line (including self-loops and non-positive weights).
	ErrEdgeLine = xerrors.New("edge line error")
)

// wireError pairs a taxonomy sentinel with the literal line the parser
// sends back over the wire, so both xerrors.Is and the response text
// survive wrapping.
type wireError struct {
	sentinel error
	line     string
}

func (e *wireError) Error() string { return e.line }
func (e *wireError) Unwrap() error { return e.sentinel }

// Wrap attaches line (the full "ERR ..." response text, without the
// trailing newline) to sentinel.
func Wrap(sentinel error, line string) error {
	return &wireError{sentinel: sentinel, line: line}
}

// Is reports whether err is, or wraps, sentinel.
func Is(err, sentinel error) bool { return xerrors.Is(err, sentinel) }

// Line returns the literal wire response text for err, falling back to
// err.Error() if err was not produced by Wrap.
func Line(err error) string {
	if we, ok := err.(*wireError); ok {
		return we.line
	}
	return err.Error()
}

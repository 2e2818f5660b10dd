package server

import (
	"fmt"
	"net"
)

// Bind listens on every interface at the given port. Bind failures are
// Fatal per §7: the caller is expected to log the error and exit(1)
// rather than retry.
func Bind(port int) (net.Listener, error) {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}
	return ln, nil
}

package server

import (
	"net"

	"github.com/brandonshearin/graphqueryd/request"
)

// netConnHandle adapts a net.Conn to request.ConnectionHandle, narrowing
// RemoteAddr to a string so tests can substitute a handle with no real
// socket behind it.
type netConnHandle struct {
	conn net.Conn
}

func newConnectionHandle(conn net.Conn) request.ConnectionHandle {
	return &netConnHandle{conn: conn}
}

func (h *netConnHandle) Write(p []byte) (int, error) { return h.conn.Write(p) }
func (h *netConnHandle) Close() error                { return h.conn.Close() }
func (h *netConnHandle) RemoteAddr() string          { return h.conn.RemoteAddr().String() }

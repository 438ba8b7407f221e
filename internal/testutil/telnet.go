package testutil

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"
)

// TelnetClient is a minimal Telnet client for session tests. Bytes read past
// a ReadUntil match are kept for the next call, so consecutive expectations
// never lose output.
type TelnetClient struct {
	t       *testing.T
	conn    net.Conn
	pending bytes.Buffer
}

// NewTelnetClient dials addr and closes the connection when the test ends.
func NewTelnetClient(t *testing.T, addr string) *TelnetClient {
	t.Helper()
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return &TelnetClient{t: t, conn: conn}
}

// ReadUntil returns everything up to and including the first occurrence of
// substr, failing the test if it does not arrive within timeout. Telnet
// command bytes are dropped.
func (c *TelnetClient) ReadUntil(substr string, timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))
	buf := make([]byte, 1024)
	for {
		if i := strings.Index(c.pending.String(), substr); i >= 0 {
			return string(c.pending.Next(i + len(substr)))
		}
		n, err := c.conn.Read(buf)
		c.pending.Write(stripCommands(buf[:n]))
		if err != nil && !strings.Contains(c.pending.String(), substr) {
			c.t.Fatalf("reading until %q: got %q, error: %v", substr, c.pending.String(), err)
		}
	}
}

// Send writes text followed by \r\n.
func (c *TelnetClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := fmt.Fprintf(c.conn, "%s\r\n", text); err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// Close closes the connection.
func (c *TelnetClient) Close() {
	_ = c.conn.Close()
}

// stripCommands removes three-byte IAC negotiations, the only commands the
// server sends.
func stripCommands(b []byte) []byte {
	out := b[:0:0]
	for i := 0; i < len(b); i++ {
		if b[i] == 0xFF && i+2 < len(b) {
			i += 2
			continue
		}
		out = append(out, b[i])
	}
	return out
}

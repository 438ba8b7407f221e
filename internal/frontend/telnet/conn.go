package telnet

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"sync"
	"time"
)

// Telnet command bytes (RFC 854) the session layer recognizes.
const (
	IAC  byte = 255
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250
	SE   byte = 240

	OptSuppressGoAhead byte = 3
)

// Conn is a Telnet connection with line-based input. It satisfies the
// console front end's Terminal interface, so a campaign can be played over it
// directly.
type Conn struct {
	raw    net.Conn
	reader *bufio.Reader
	mu     sync.Mutex

	// readTimeout bounds the wait for one line of player input.
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// NewConn wraps a raw TCP connection.
//
// Precondition: raw must be a valid, open network connection.
func NewConn(raw net.Conn, readTimeout, writeTimeout time.Duration) *Conn {
	return &Conn{
		raw:          raw,
		reader:       bufio.NewReaderSize(raw, 4096),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

// Negotiate asks the client to suppress go-ahead so prompts render inline.
func (c *Conn) Negotiate() error {
	return c.write(func(w io.Writer) error {
		_, err := w.Write([]byte{IAC, WILL, OptSuppressGoAhead})
		return err
	})
}

// ReadLine reads one line, dropping Telnet command sequences and control
// characters other than tab. The line terminator (\n, \r, or \r\n) is not
// returned. A read deadline expiry surfaces as a net timeout error.
func (c *Conn) ReadLine() (string, error) {
	if c.readTimeout > 0 {
		_ = c.raw.SetReadDeadline(time.Now().Add(c.readTimeout))
	}

	var line bytes.Buffer
	for {
		b, err := c.reader.ReadByte()
		if err != nil {
			return line.String(), err
		}
		switch {
		case b == IAC:
			if err := c.skipCommand(); err != nil {
				return line.String(), err
			}
		case b == '\n':
			return line.String(), nil
		case b == '\r':
			if next, err := c.reader.Peek(1); err == nil && next[0] == '\n' {
				_, _ = c.reader.ReadByte()
			}
			return line.String(), nil
		case b >= 32 || b == '\t':
			line.WriteByte(b)
		}
	}
}

// skipCommand consumes the remainder of a command whose IAC byte was read.
func (c *Conn) skipCommand() error {
	cmd, err := c.reader.ReadByte()
	if err != nil {
		return err
	}
	switch cmd {
	case WILL, WONT, DO, DONT:
		_, err = c.reader.ReadByte()
		return err
	case SB:
		var prev byte
		for {
			b, err := c.reader.ReadByte()
			if err != nil {
				return err
			}
			if prev == IAC && b == SE {
				return nil
			}
			prev = b
		}
	}
	return nil
}

// WriteLine sends text followed by \r\n.
func (c *Conn) WriteLine(text string) error {
	return c.write(func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s\r\n", text)
		return err
	})
}

// WritePrompt sends text without a line break.
func (c *Conn) WritePrompt(prompt string) error {
	return c.write(func(w io.Writer) error {
		_, err := io.WriteString(w, prompt)
		return err
	})
}

func (c *Conn) write(fn func(io.Writer) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeTimeout > 0 {
		_ = c.raw.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return fn(c.raw)
}

// Close closes the underlying TCP connection.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}

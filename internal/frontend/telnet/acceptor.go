package telnet

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/encounters/internal/config"
	"github.com/cory-johannsen/encounters/internal/observability"
)

// SessionHandler runs one client session to completion.
type SessionHandler interface {
	HandleSession(ctx context.Context, conn *Conn) error
}

// SessionHandlerFunc adapts a function to SessionHandler.
type SessionHandlerFunc func(ctx context.Context, conn *Conn) error

// HandleSession calls f.
func (f SessionHandlerFunc) HandleSession(ctx context.Context, conn *Conn) error { return f(ctx, conn) }

// Acceptor listens for Telnet connections and runs each one through a
// SessionHandler on its own goroutine.
type Acceptor struct {
	cfg     config.TelnetConfig
	handler SessionHandler
	logger  *zap.Logger

	mu       sync.Mutex
	listener net.Listener
	cancel   context.CancelFunc
	done     chan struct{}
	wg       sync.WaitGroup
	active   atomic.Int64
}

// NewAcceptor creates an Acceptor.
//
// Precondition: handler and logger must be non-nil.
func NewAcceptor(cfg config.TelnetConfig, handler SessionHandler, logger *zap.Logger) *Acceptor {
	return &Acceptor{cfg: cfg, handler: handler, logger: logger}
}

// ListenAndServe serves until Stop is called.
func (a *Acceptor) ListenAndServe() error {
	return a.Serve(context.Background())
}

// Serve listens on the configured address and accepts connections until ctx
// is cancelled or Stop is called. Session contexts derive from ctx, so
// cancelling it also aborts running campaigns.
//
// Postcondition: The listener is closed and every session has returned.
func (a *Acceptor) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.mu.Lock()
	a.listener = ln
	a.cancel = cancel
	a.done = done
	a.mu.Unlock()
	defer close(done)
	defer a.wg.Wait()
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	a.logger.Info("telnet acceptor listening", zap.String("addr", ln.Addr().String()))
	for {
		raw, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				a.logger.Info("telnet acceptor stopped")
				return nil
			}
			a.logger.Error("accepting connection", zap.Error(err))
			continue
		}
		a.wg.Add(1)
		go a.serveConn(ctx, raw)
	}
}

func (a *Acceptor) serveConn(ctx context.Context, raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()
	log := a.logger.With(observability.RemoteAddr(addr))

	conn := NewConn(raw, a.cfg.ReadTimeout, a.cfg.WriteTimeout)
	defer conn.Close()

	// Unblock a pending read when the server shuts down.
	stop := context.AfterFunc(ctx, func() { _ = raw.Close() })
	defer stop()

	log.Info("client connected", zap.Int64("active", a.active.Add(1)))
	defer a.active.Add(-1)

	if err := conn.Negotiate(); err != nil {
		log.Error("telnet negotiation failed", zap.Error(err))
		return
	}
	if err := a.handler.HandleSession(ctx, conn); err != nil {
		log.Info("session ended", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return
	}
	log.Info("session ended cleanly", zap.Duration("duration", time.Since(start)))
}

// Stop closes the listener and waits for Serve to return.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Addr returns the listening address, or "" before Serve has started.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// ActiveSessions returns the number of connected clients.
func (a *Acceptor) ActiveSessions() int64 {
	return a.active.Load()
}

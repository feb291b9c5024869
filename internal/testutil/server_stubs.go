package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StubHTTPServer implements the server's httpServer contract for tests.
// ListenAndServe returns ListenErr immediately, or blocks until Shutdown when
// Block is set.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	BindErr     error
	ListenErr   error
	ShutdownErr error
	Block       bool

	mu            sync.Mutex
	BindCalls     int
	ListenCalls   int
	ShutdownCalls int
	done          chan struct{}
}

func (s *StubHTTPServer) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.BindCalls++
	return s.BindErr
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.ListenCalls++
	if s.done == nil {
		s.done = make(chan struct{})
	}
	done := s.done
	s.mu.Unlock()

	if s.Block && s.ListenErr == nil {
		<-done
		return http.ErrServerClosed
	}
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ShutdownCalls++
	if s.done == nil {
		s.done = make(chan struct{})
	}
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// Counts returns bind, listen, and shutdown call counts.
func (s *StubHTTPServer) Counts() (bind, listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.BindCalls, s.ListenCalls, s.ShutdownCalls
}

// BlockingHTTPServer allows simulating a shutdown that waits on an unblock channel.
type BlockingHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ShutdownCalls int
	Unblock       chan struct{}
}

func (b *BlockingHTTPServer) Listen() error {
	return nil
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

func (b *BlockingHTTPServer) Addr() string {
	return b.AddrVal
}

func (b *BlockingHTTPServer) Handler() http.Handler {
	return b.HandlerVal
}

// ErrHTTPServer returns an error on ListenAndServe; Shutdown increments a counter.
type ErrHTTPServer struct {
	mu            sync.Mutex
	shutdownCalls int
}

func (e *ErrHTTPServer) Listen() error {
	return nil
}

func (e *ErrHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *ErrHTTPServer) Shutdown(_ context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.shutdownCalls++
	return nil
}

func (e *ErrHTTPServer) Addr() string {
	return ":0"
}

func (e *ErrHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

// ShutdownCalls returns how many times Shutdown ran.
func (e *ErrHTTPServer) ShutdownCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shutdownCalls
}

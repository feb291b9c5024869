package server

import (
	"context"
	"net"
	"net/http"
)

// httpServer abstracts the HTTP server implementation for easier testing.
// Listen binds the address so ListenAndServe can run in the background
// without racing callers that need the server to be reachable.
type httpServer interface {
	Listen() error
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type netHTTPServer struct {
	srv      *http.Server
	listener net.Listener
}

var listen = net.Listen

func (s *netHTTPServer) Listen() error {
	if s.listener != nil {
		return nil
	}
	ln, err := listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

func (s *netHTTPServer) ListenAndServe() error {
	if s.listener != nil {
		return s.srv.Serve(s.listener)
	}
	return s.srv.ListenAndServe()
}

func (s *netHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s *netHTTPServer) Handler() http.Handler              { return s.srv.Handler }

// Addr returns the bound address once listening, otherwise the configured one.
func (s *netHTTPServer) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

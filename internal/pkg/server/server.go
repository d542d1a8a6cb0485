// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package server serves the greeter's static routes over HTTP.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
)

// Port is the TCP port the greeter listens on.
const Port = 3000

var errNotListening = errors.New("server is not listening")

// Server binds a listening socket and serves a handler on it.
type Server struct {
	addr    string
	handler http.Handler

	ln net.Listener
}

// Option configures a Server.
type Option func(s *Server)

// WithAddr overrides the address to bind, e.g. "127.0.0.1:0".
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithHandler overrides the handler to serve.
func WithHandler(h http.Handler) Option {
	return func(s *Server) {
		s.handler = h
	}
}

// New returns a stopped Server for the greeter routes on Port.
func New(opts ...Option) *Server {
	s := &Server{
		addr:    ":" + strconv.Itoa(Port),
		handler: NewRouter(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Listen binds the listening socket. Connections are not accepted until Serve is called.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return &ErrListen{Addr: s.addr, err: err}
	}
	s.ln = ln
	return nil
}

// Serve accepts connections on the bound socket and blocks until the socket is closed.
func (s *Server) Serve() error {
	if s.ln == nil {
		return errNotListening
	}
	if err := http.Serve(s.ln, s.handler); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("serve on %s: %w", s.ln.Addr(), err)
	}
	return nil
}

// Addr returns the bound address, or nil if the server isn't listening.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Port returns the bound TCP port, or 0 if the server isn't listening.
func (s *Server) Port() int {
	addr, ok := s.Addr().(*net.TCPAddr)
	if !ok {
		return 0
	}
	return addr.Port
}

// Close closes the listening socket.
func (s *Server) Close() error {
	if s.ln == nil {
		return errNotListening
	}
	return s.ln.Close()
}

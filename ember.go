// Package ember is an embeddable HTTP/1.1 server library.
//
// Applications register route handlers keyed on (method, path pattern) and
// launch the server on a TCP, optionally TLS, endpoint. The library accepts
// connections, parses requests, dispatches them to handlers, and writes back
// conformant HTTP/1.1 responses, including keep-alive, chunked transfer,
// gzip content coding, and Expect: 100-continue.
//
// The package intentionally stays out of a few adjacent concerns: it never
// logs on its own (callers attach a Logger), it never compresses on its own
// terms (callers may swap the Compressor), and it has no opinion about how
// certificates are produced (callers load a tls.Config and pass it in). Those
// are external collaborators, not core responsibilities.
package ember

import (
	"crypto/tls"
	"net"
	"sort"
	"sync"
	"time"
)

// Handler is the application-supplied function invoked once routing has
// matched a request to a registered route.
type Handler func(*Request) *Response

// Server is the embeddable HTTP/1.1 server. The zero value is not usable;
// construct one with New.
type Server struct {
	config Config

	mu     sync.RWMutex
	routes *RouteTable
	mws    *MiddlewareTable

	logger  Logger
	metrics MetricsSink

	cancelMu  sync.Mutex
	cancelled bool
	cancelCh  chan struct{}

	wg sync.WaitGroup
}

// New creates a Server with the given configuration. A zero Config is
// replaced field-by-field with DefaultConfig's values.
func New(config Config) *Server {
	config = config.withDefaults()
	return &Server{
		config:   config,
		routes:   newRouteTable(),
		mws:      newMiddlewareTable(),
		logger:   config.Logger,
		metrics:  config.Metrics,
		cancelCh: make(chan struct{}),
	}
}

// Handle registers a route. method may be a concrete verb or MethodAll to
// match every verb. Patterns are '/'-delimited; a segment beginning with ':'
// is a parameter placeholder.
func (s *Server) Handle(method Method, pattern string, handler Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes.add(method, pattern, handler)
}

func (s *Server) Get(pattern string, h Handler)     { s.Handle(MethodGET, pattern, h) }
func (s *Server) Post(pattern string, h Handler)    { s.Handle(MethodPOST, pattern, h) }
func (s *Server) Put(pattern string, h Handler)     { s.Handle(MethodPUT, pattern, h) }
func (s *Server) Delete(pattern string, h Handler)  { s.Handle(MethodDELETE, pattern, h) }
func (s *Server) Patch(pattern string, h Handler)   { s.Handle(MethodPATCH, pattern, h) }
func (s *Server) Head(pattern string, h Handler)    { s.Handle(MethodHEAD, pattern, h) }
func (s *Server) Options(pattern string, h Handler) { s.Handle(MethodOPTIONS, pattern, h) }
func (s *Server) All(pattern string, h Handler)     { s.Handle(MethodALL, pattern, h) }

// Use registers a middleware entry matched against paths per the given
// PathMatch rule. kind selects whether it runs before dispatch, after
// dispatch, or only on a recovered handler panic.
func (s *Server) Use(kind MiddlewareKind, match PathMatch, fn MiddlewareFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mws.add(kind, match, fn)
}

// Run binds addr, accepts connections, and serves them until Cancel is
// called or the listener fails. It blocks until the accept loop exits.
func (s *Server) Run(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// RunTLS is Run's TLS-wrapped counterpart. tlsConfig is expected to already
// carry a loaded certificate; building one is an external collaborator's job
// (spec.md §1), not this package's.
func (s *Server) RunTLS(addr string, tlsConfig *tls.Config) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(tls.NewListener(ln, tlsConfig))
}

// Cancel triggers the configured ShutdownMode. Immediate shutdown closes the
// fan-out channel right away; Graceful(timeout) sleeps timeout first. Cancel
// is safe to call once; subsequent calls are no-ops.
func (s *Server) Cancel() {
	s.cancelMu.Lock()
	if s.cancelled {
		s.cancelMu.Unlock()
		return
	}
	s.cancelled = true
	s.cancelMu.Unlock()

	go func() {
		if d, ok := s.config.ShutdownMode.graceful(); ok {
			timer := time.NewTimer(d)
			<-timer.C
		}
		s.mu.Lock()
		s.routes = nil
		s.mu.Unlock()
		close(s.cancelCh)
	}()
}

// snapshotTables returns the route and middleware tables to use for a newly
// accepted connection, or ok=false if the server has already begun shutting
// down new accepts down (see SPEC_FULL.md §9, route table lifetime).
func (s *Server) snapshotTables() (*RouteTable, *MiddlewareTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.routes == nil {
		return nil, nil, false
	}
	return s.routes, s.mws, true
}

func sortedStrings(ss []string) []string {
	out := append([]string(nil), ss...)
	sort.Strings(out)
	return out
}

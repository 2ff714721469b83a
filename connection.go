package ember

import (
	"bufio"
	"bytes"
	"net"
	"time"

	"github.com/yourusername/ember/logging"
)

var headerTerminator = []byte("\r\n\r\n")

// cancelWatcher closes conn as soon as cancelCh fires, which unblocks any
// in-flight blocked Read with a net.ErrClosed-wrapped error that
// classifyRawReadErr recognizes as cancellation rather than a generic I/O
// failure (spec.md §4.6). It exits on its own once done is closed by the
// connection's normal teardown, so it never outlives the connection it
// watches.
func cancelWatcher(conn net.Conn, cancelCh, done <-chan struct{}) {
	select {
	case <-cancelCh:
		conn.Close()
	case <-done:
	}
}

// serveConnection implements spec.md §4.5's per-connection loop. routes and
// mws are the snapshot the server handed this connection at accept time; a
// connection keeps serving with that snapshot even after the server nils its
// own fields for new accepts (spec.md §4.6, route table lifetime).
func (s *Server) serveConnection(conn net.Conn, routes *RouteTable, mws *MiddlewareTable) {
	connID := logging.NewConnectionID()
	done := make(chan struct{})
	go cancelWatcher(conn, s.cancelCh, done)
	defer close(done)
	defer conn.Close()

	if s.metrics != nil {
		s.metrics.ConnectionAccepted()
		defer s.metrics.ConnectionClosed()
	}

	br := getBufioReader(conn)
	bw := getBufioWriter(conn)
	defer putBufioReader(br)
	defer putBufioWriter(bw)

	fr := newFramedReader(conn, br, s.config.ReadTimeout)

	for {
		matched, trailing, rerr := fr.readUntil(headerTerminator, s.config.RequestHeaderMaxSize)
		if rerr != nil {
			switch rerr.Kind {
			case readMaxSizeExceeded:
				writeResponse(bw, responseContext{}, StatusResponse(413), nil)
				bw.Flush()
				fr.pending = nil
				fr.eof = false
				continue
			default:
				s.logConnError(connID, rerr)
				return
			}
		}
		if len(matched) == 0 {
			return
		}
		if !bytes.HasSuffix(matched, headerTerminator) {
			// EOF mid-request: nothing to answer, just close.
			return
		}
		if s.metrics != nil {
			s.metrics.BytesRead(len(matched))
		}

		req := getRequest()
		perr := parseRequest(req, matched, trailing, fr, s.config, bw)
		if perr != nil {
			if s.metrics != nil {
				s.metrics.RequestError()
			}
			s.handleParseError(bw, perr, connID)
			putRequest(req)
			switch perr.Kind {
			case parseInvalidBody, parseInvalidHeader, parseInvalidRequest, parseUnhandledRequest, parsePayloadTooLarge:
				fr.pending = nil
				fr.eof = false
				continue
			default:
				return
			}
		}
		if s.metrics != nil {
			s.metrics.BytesRead(len(req.Body))
		}

		resp := s.dispatch(req, routes, mws)
		ctx := newResponseContext(req)
		connClose := ctx.connectionClose

		if s.metrics != nil {
			s.metrics.RequestHandled()
		}
		s.logRequest(connID, req, resp)

		if s.config.ReadTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.config.ReadTimeout))
		}
		n, werr := writeResponse(bw, ctx, resp, s.config.Compressor)
		if s.metrics != nil {
			s.metrics.BytesWritten(n)
		}
		putRequest(req)
		if werr != nil {
			if s.metrics != nil {
				s.metrics.ConnectionError()
			}
			return
		}
		if err := bw.Flush(); err != nil {
			return
		}

		fr.pending = nil
		fr.eof = false

		if connClose {
			return
		}
	}
}

// dispatch runs pre-request middleware, router dispatch inside a recovered
// call, and post-request middleware, per spec.md §4.5 step 3.
func (s *Server) dispatch(req *Request, routes *RouteTable, mws *MiddlewareTable) (resp *Response) {
	if mws != nil {
		if stopResp, stop := mws.runPreRequest(req); stop {
			resp = stopResp
			if mws != nil {
				resp = mws.runPostRequest(req, resp)
			}
			return resp
		}
	}

	resp = s.invokeRoute(req, routes, mws)

	if mws != nil {
		resp = mws.runPostRequest(req, resp)
	}
	return resp
}

// invokeRoute calls into the router with a panic recovered into
// error-handler middleware (spec.md §4.5 step 3).
func (s *Server) invokeRoute(req *Request, routes *RouteTable, mws *MiddlewareTable) (resp *Response) {
	defer func() {
		if r := recover(); r != nil {
			if s.metrics != nil {
				s.metrics.RequestError()
			}
			if mws != nil {
				resp = mws.runErrorHandler(req)
			} else {
				resp = StatusResponse(500)
			}
		}
	}()
	return routes.dispatch(req)
}

func (s *Server) handleParseError(w *bufio.Writer, perr *ParseError, connID string) {
	switch perr.Kind {
	case parseInvalidBody, parseInvalidHeader, parseInvalidRequest, parseUnhandledRequest:
		writeResponse(w, responseContext{}, StatusResponse(400), nil)
		w.Flush()
	case parsePayloadTooLarge:
		writeResponse(w, responseContext{}, StatusResponse(413), nil)
		w.Flush()
	default:
		if s.logger != nil && perr.Err != nil {
			s.logger.Log(logging.Entry{ConnectionID: connID, Message: "parse error", Error: perr.Err.Error()})
		}
	}
}

func (s *Server) logConnError(connID string, rerr *ReadError) {
	if s.logger == nil || rerr.Kind != readIOError || rerr.Err == nil {
		return
	}
	s.logger.Log(logging.Entry{ConnectionID: connID, Message: "connection read error", Error: rerr.Err.Error()})
}

func (s *Server) logRequest(connID string, req *Request, resp *Response) {
	if s.logger == nil {
		return
	}
	status := resp.Status
	if status == 0 {
		status = 200
	}
	s.logger.Log(logging.Entry{
		ConnectionID: connID,
		Method:       req.Method.String(),
		Path:         req.Path,
		Status:       status,
	})
}

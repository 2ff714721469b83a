package ember

import (
	"errors"
	"io"
	"net"
	"os"
)

// readKind enumerates the read-layer error kinds spec.md §4.1/§7 defines.
type readKind int

const (
	readIOError readKind = iota
	readMaxSizeExceeded
	readTimeout
	readCancellation
	readUnexpected
)

// ReadError is produced by the framed reader. Two ReadErrors of Kind
// readIOError compare Equal when their underlying OS error kind matches,
// regardless of message, per spec.md §7's equality-for-testing rule.
type ReadError struct {
	Kind readKind
	Err  error
}

func (e *ReadError) Error() string {
	switch e.Kind {
	case readIOError:
		if e.Err != nil {
			return "ember: io error: " + e.Err.Error()
		}
		return "ember: io error"
	case readMaxSizeExceeded:
		return "ember: max size exceeded"
	case readTimeout:
		return "ember: read timeout"
	case readCancellation:
		return "ember: cancelled"
	default:
		return "ember: unexpected read error"
	}
}

func (e *ReadError) Unwrap() error { return e.Err }

// Equal implements spec.md §7's "Equality of errors for testing": two
// IoError values are equal when their OS error kind matches, regardless of
// message.
func (e *ReadError) Equal(other *ReadError) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Kind != other.Kind {
		return false
	}
	if e.Kind != readIOError {
		return true
	}
	return osErrorKind(e.Err) == osErrorKind(other.Err)
}

// osErrorKind coarsens an error to the handful of categories the Rust
// source's io::ErrorKind comparison cares about in practice: whether the
// peer closed, a deadline fired, or something else happened.
func osErrorKind(err error) string {
	switch {
	case err == nil:
		return "nil"
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return "eof"
	case errors.Is(err, os.ErrClosed):
		return "closed"
	case errors.Is(err, os.ErrDeadlineExceeded):
		return "timeout"
	default:
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return "timeout"
		}
		return "other"
	}
}

func ioReadErr(err error) *ReadError      { return &ReadError{Kind: readIOError, Err: err} }
func maxSizeExceededErr() *ReadError      { return &ReadError{Kind: readMaxSizeExceeded} }
func timeoutReadErr() *ReadError          { return &ReadError{Kind: readTimeout} }
func cancellationReadErr() *ReadError     { return &ReadError{Kind: readCancellation} }
func unexpectedReadErr(err error) *ReadError {
	return &ReadError{Kind: readUnexpected, Err: err}
}

// parseKind enumerates the parse-layer error kinds spec.md §4.2/§7 defines.
type parseKind int

const (
	parseUnhandledRequest parseKind = iota
	parseInvalidRequest
	parseInvalidHeader
	parseInvalidBody
	parsePayloadTooLarge
	parseIOError
	parseTimeout
	parseCancellation
	parseUnexpected
)

// ParseError is produced by the request parser.
type ParseError struct {
	Kind parseKind
	Err  error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case parseUnhandledRequest:
		return "ember: unhandled request"
	case parseInvalidRequest:
		return "ember: invalid request"
	case parseInvalidHeader:
		return "ember: invalid header"
	case parseInvalidBody:
		return "ember: invalid body"
	case parsePayloadTooLarge:
		return "ember: payload too large"
	case parseIOError:
		if e.Err != nil {
			return "ember: io error: " + e.Err.Error()
		}
		return "ember: io error"
	case parseTimeout:
		return "ember: timeout"
	case parseCancellation:
		return "ember: cancelled"
	default:
		return "ember: unexpected parse error"
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

func unhandledRequestErr() *ParseError { return &ParseError{Kind: parseUnhandledRequest} }
func invalidRequestErr() *ParseError   { return &ParseError{Kind: parseInvalidRequest} }
func invalidHeaderErr() *ParseError    { return &ParseError{Kind: parseInvalidHeader} }
func invalidBodyErr() *ParseError      { return &ParseError{Kind: parseInvalidBody} }
func payloadTooLargeErr() *ParseError  { return &ParseError{Kind: parsePayloadTooLarge} }

// fromReadError maps a read-layer error onto its parse-layer counterpart per
// spec.md §4.2's table: MaxSizeExceeded -> PayloadTooLarge, IoError ->
// IoError, Timeout -> Timeout, Cancellation -> Cancellation, UnexpectedError
// -> InvalidBody.
func fromReadError(re *ReadError) *ParseError {
	switch re.Kind {
	case readMaxSizeExceeded:
		return payloadTooLargeErr()
	case readIOError:
		return &ParseError{Kind: parseIOError, Err: re.Err}
	case readTimeout:
		return &ParseError{Kind: parseTimeout}
	case readCancellation:
		return &ParseError{Kind: parseCancellation}
	default:
		return invalidBodyErr()
	}
}

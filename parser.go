package ember

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// continueWriter is the minimal surface the parser needs to answer
// Expect: 100-continue before reading the body (spec.md §4.2 step 7). Flush
// is required: cw is normally a buffered *bufio.Writer, and a client waiting
// for the interim response before it sends the body (spec.md §6) would
// otherwise deadlock against a 100 Continue line sitting unflushed in the
// buffer.
type continueWriter interface {
	Write([]byte) (int, error)
	Flush() error
}

// parseRequest implements spec.md §4.2, filling the caller-supplied req (a
// pooled or freshly allocated Request) in place rather than allocating one,
// so the connection driver can round-trip Request values through pool.go's
// requestPool. headerBytes runs through the CRLF CRLF terminator inclusive;
// carryover is whatever body bytes arrived in the same read as the header
// block. fr supplies any further body bytes.
func parseRequest(req *Request, headerBytes []byte, carryover []byte, fr *framedReader, cfg Config, cw continueWriter) *ParseError {
	if !utf8.Valid(headerBytes) {
		return invalidRequestErr()
	}

	lines := strings.Split(string(headerBytes), "\r\n")
	// Split on "\r\n" yields a trailing "" for the final CRLF CRLF; drop any
	// number of empty trailing entries the terminator produced.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return invalidRequestErr()
	}

	method, target, version, ok := parseRequestLine(lines[0])
	if !ok {
		return unhandledRequestErr()
	}
	m, ok := parseMethod(method)
	if !ok {
		return unhandledRequestErr()
	}
	protoMinor := 1
	switch version {
	case "HTTP/1.1":
		protoMinor = 1
	case "HTTP/1.0":
		protoMinor = 0
	default:
		return unhandledRequestErr()
	}

	// Path normalization quirk (spec.md §4.4, §9): absolute-form targets
	// containing "http" are rewritten to everything after the third '/'.
	// Deliberately preserved even though it also fires on origin-form paths
	// that happen to contain the substring (e.g. "/httpbin").
	if strings.Contains(target, "http") {
		parts := strings.Split(target, "/")
		if len(parts) > 3 {
			target = strings.Join(parts[3:], "/")
		} else {
			target = ""
		}
	}

	path, rawQuery := target, ""
	if i := strings.IndexByte(target, '?'); i >= 0 {
		path, rawQuery = target[:i], target[i+1:]
	}

	req.Method = m
	req.ProtoMajor = 1
	req.ProtoMinor = protoMinor
	req.Path = path
	parseQueryInto(&req.query, rawQuery)

	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return invalidHeaderErr()
		}
		name := strings.TrimRight(line[:idx], " \t")
		value := strings.TrimLeft(line[idx+1:], " \t")
		if !isValidHeaderName(name) || !isValidHeaderValue(value) {
			return invalidHeaderErr()
		}
		if !req.Header.addParsed(name, value) {
			return invalidHeaderErr()
		}
	}

	if protoMinor == 1 && !req.Header.Has("host") {
		return invalidRequestErr()
	}
	hasCL := req.Header.Has("content-length")
	hasTE := req.Header.Has("transfer-encoding")
	if hasCL && hasTE {
		return invalidRequestErr()
	}

	if req.wantsContinue() {
		if _, err := cw.Write([]byte("HTTP/1.1 100 Continue\r\n\r\n")); err != nil {
			return &ParseError{Kind: parseIOError, Err: err}
		}
		if err := cw.Flush(); err != nil {
			return &ParseError{Kind: parseIOError, Err: err}
		}
	}

	switch {
	case hasCL:
		clStr, _ := req.Header.Get("content-length")
		n, perr := strconv.ParseInt(clStr, 10, 64)
		if perr != nil || n < 0 {
			return invalidHeaderErr()
		}
		if n > cfg.RequestBodyMaxSize {
			return payloadTooLargeErr()
		}
		fr.seed(carryover)
		body, rerr := fr.readN(int(n))
		if rerr != nil {
			return fromReadError(rerr)
		}
		req.Body = body
	case hasTE:
		teVal, _ := req.Header.Get("transfer-encoding")
		if teVal != "chunked" {
			return invalidHeaderErr()
		}
		fr.seed(carryover)
		body, rerr := fr.readChunked(cfg.RequestBodyMaxSize)
		if rerr != nil {
			return fromReadError(rerr)
		}
		req.Body = body
	default:
		req.Body = nil
	}

	return nil
}

// parseRequestLine splits "METHOD SP target SP VERSION" into exactly three
// tokens (spec.md §4.2 step 2).
func parseRequestLine(line string) (method, target, version string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return "", "", "", false
	}
	return fields[0], fields[1], fields[2], true
}

// parseQueryInto implements spec.md §4.2 step 9 / §8's round-trip property:
// everything after the first '?' splits on '&', each piece splits on the
// first '=' with a missing '=' yielding an empty value.
func parseQueryInto(m *multiMap, raw string) {
	if raw == "" {
		return
	}
	if m.m == nil {
		m.m = make(map[string]*values)
	}
	for _, piece := range strings.Split(raw, "&") {
		if piece == "" {
			continue
		}
		if i := strings.IndexByte(piece, '='); i >= 0 {
			m.add(piece[:i], piece[i+1:])
		} else {
			m.add(piece, "")
		}
	}
}

// isTChar implements the tchar grammar spec.md §4.2 step 3 requires for
// header names: ALPHA | DIGIT | "!#$%&'*+-.^_`|~".
func isTChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isValidHeaderName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isTChar(name[i]) {
			return false
		}
	}
	return true
}

// isValidHeaderValue requires TAB or 0x20..0x7E (spec.md §4.2 step 3): no
// control characters other than TAB.
func isValidHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		b := value[i]
		if b == '\t' {
			continue
		}
		if b < 0x20 || b > 0x7e {
			return false
		}
	}
	return true
}

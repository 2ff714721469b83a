package ember

import "strings"

// MiddlewareKind selects when a middleware entry runs in the request
// lifecycle (spec.md §9, resolved Open Question).
type MiddlewareKind int

const (
	// PreRequest runs after the request is fully parsed, before dispatch. It
	// may mutate the request or short-circuit with MiddlewareResult.Stop.
	PreRequest MiddlewareKind = iota
	// PostRequest runs after dispatch (or after PreRequest short-circuits),
	// over whatever response resulted. It may mutate or replace it.
	PostRequest
	// ErrorHandler runs in place of a handler whose call panicked, receiving
	// a synthesized 500 as its resp argument.
	ErrorHandler
)

// PathMatch selects how a middleware entry's target string is compared
// against a request path (spec.md §3, §9).
type PathMatch struct {
	kind  pathMatchKind
	value string
}

type pathMatchKind int

const (
	pmExact pathMatchKind = iota
	pmBegin
	pmEnd
	pmContains
	pmWildcard
)

func Exact(s string) PathMatch    { return PathMatch{pmExact, s} }
func Begin(s string) PathMatch    { return PathMatch{pmBegin, s} }
func End(s string) PathMatch      { return PathMatch{pmEnd, s} }
func Contains(s string) PathMatch { return PathMatch{pmContains, s} }
func Wildcard() PathMatch         { return PathMatch{pmWildcard, ""} }

func (pm PathMatch) matches(path string) bool {
	switch pm.kind {
	case pmExact:
		return path == pm.value
	case pmBegin:
		return strings.HasPrefix(path, pm.value)
	case pmEnd:
		return strings.HasSuffix(path, pm.value)
	case pmContains:
		return strings.Contains(path, pm.value)
	case pmWildcard:
		return true
	default:
		return false
	}
}

// MiddlewareResult is what a MiddlewareFunc returns. Stop, when true on a
// PreRequest entry, serializes Response immediately and skips dispatch and
// any remaining pre-request entries.
type MiddlewareResult struct {
	Stop     bool
	Response *Response
}

// MiddlewareFunc is the application-supplied middleware body. req is
// mutable in place; resp is nil for PreRequest and the in-flight response
// for PostRequest/ErrorHandler.
type MiddlewareFunc func(req *Request, resp *Response) MiddlewareResult

type middlewareEntry struct {
	kind  MiddlewareKind
	match PathMatch
	fn    MiddlewareFunc
}

// MiddlewareTable is the ordered (kind, pathMatch, fn) list spec.md §3
// describes, fully wired per §9.
type MiddlewareTable struct {
	entries []middlewareEntry
}

func newMiddlewareTable() *MiddlewareTable {
	return &MiddlewareTable{}
}

func (mt *MiddlewareTable) add(kind MiddlewareKind, match PathMatch, fn MiddlewareFunc) {
	mt.entries = append(mt.entries, middlewareEntry{kind, match, fn})
}

// runPreRequest runs every PreRequest entry matching req.Path in order. If
// any returns Stop, its Response is returned immediately (stop=true) and no
// further entries run.
func (mt *MiddlewareTable) runPreRequest(req *Request) (resp *Response, stop bool) {
	for _, e := range mt.entries {
		if e.kind != PreRequest || !e.match.matches(req.Path) {
			continue
		}
		if r := e.fn(req, nil); r.Stop {
			return r.Response, true
		}
	}
	return nil, false
}

// runPostRequest runs every PostRequest entry matching req.Path in order,
// threading the (possibly replaced) response through each.
func (mt *MiddlewareTable) runPostRequest(req *Request, resp *Response) *Response {
	for _, e := range mt.entries {
		if e.kind != PostRequest || !e.match.matches(req.Path) {
			continue
		}
		if r := e.fn(req, resp); r.Response != nil {
			resp = r.Response
		}
	}
	return resp
}

// runErrorHandler runs every ErrorHandler entry matching req.Path in order
// over a synthesized 500, returning the last entry's replacement response if
// any ran, or the synthesized 500 untouched otherwise.
func (mt *MiddlewareTable) runErrorHandler(req *Request) *Response {
	resp := StatusResponse(500)
	for _, e := range mt.entries {
		if e.kind != ErrorHandler || !e.match.matches(req.Path) {
			continue
		}
		if r := e.fn(req, resp); r.Response != nil {
			resp = r.Response
		}
	}
	return resp
}

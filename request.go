package ember

// Request is what a handler sees: a fully-parsed HTTP/1.1 request, body
// already read into memory. Handlers must not retain a *Request past their
// return (spec.md §5, "MUST NOT retain references to the request").
type Request struct {
	Method      Method
	ProtoMajor  int
	ProtoMinor  int
	Path        string
	Header      Header
	PathParams  map[string]string
	Body        []byte

	query multiMap
}

// newRequest returns a Request with its internal maps ready to receive values.
func newRequest() *Request {
	return &Request{
		Header:     NewHeader(),
		PathParams: make(map[string]string),
		query:      multiMap{m: make(map[string]*values)},
	}
}

// Query returns the first value of a query-string parameter.
func (r *Request) Query(key string) (string, bool) {
	return r.query.get(key)
}

// QueryList returns every value of a query-string parameter, in the order
// they appeared (spec.md §8: "?k1=v1&k1=v2&k2=" -> k1:[v1,v2], k2:[""]).
func (r *Request) QueryList(key string) []string {
	return r.query.list(key)
}

// Proto renders the request's declared HTTP version.
func (r *Request) Proto() string {
	if r.ProtoMinor == 0 {
		return "HTTP/1.0"
	}
	return "HTTP/1.1"
}

// connClose reports whether this request requires the connection to close
// after its response (spec.md §4.3 step 2, §4.5 step 4).
func (r *Request) connClose() bool {
	return r.Header.EqualsFold("connection", "close")
}

// wantsGzip reports whether the client will accept a gzip-coded response.
func (r *Request) wantsGzip() bool {
	return r.Header.ContainsFold("accept-encoding", "gzip")
}

// wantsContinue reports whether Expect: 100-continue is present
// (case-insensitive substring match per spec.md §4.2 step 7).
func (r *Request) wantsContinue() bool {
	return r.Header.ContainsFold("expect", "100-continue")
}

// responseContext is the "kept request" design.md §9 describes: a shallow
// snapshot of only what the serializer needs once the handler has consumed
// (and may have mutated or discarded references into) the full Request.
type responseContext struct {
	connectionClose bool
	acceptGzip      bool
}

func newResponseContext(r *Request) responseContext {
	return responseContext{
		connectionClose: r.connClose(),
		acceptGzip:      r.wantsGzip(),
	}
}

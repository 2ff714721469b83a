package ember

// HeaderField is one entry of a Response's extra-header sequence. Order is
// preserved on the wire (spec.md §3: "extra headers (ordered sequence of
// key/value pairs)"), unlike Request's case-folded Header multimap.
type HeaderField struct {
	Name  string
	Value string
}

// Response is what a handler returns. The zero value is a 200 OK with an
// empty, text/plain body; use the constructors below to build common shapes.
type Response struct {
	Status  int
	Type    MIMEType
	Body    []byte
	Headers []HeaderField
}

// Header appends an extra header to the response, preserving insertion order.
func (r *Response) Header(name, value string) *Response {
	r.Headers = append(r.Headers, HeaderField{name, value})
	return r
}

// WithStatus overrides the status code.
func (r *Response) WithStatus(code int) *Response {
	r.Status = code
	return r
}

// Text builds a 200 text/plain response.
func Text(body string) *Response {
	return &Response{Status: 200, Type: TextPlain, Body: []byte(body)}
}

// HTML builds a 200 text/html response.
func HTML(body string) *Response {
	return &Response{Status: 200, Type: TextHTML, Body: []byte(body)}
}

// JSON builds a 200 application/json response from pre-encoded bytes. The
// core does not marshal on the handler's behalf — callers encode with
// encoding/json (or any encoder) themselves; the server's job ends at wire
// framing.
func JSON(body []byte) *Response {
	return &Response{Status: 200, Type: ApplicationJSON, Body: body}
}

// Bytes builds a 200 response of the given MIME type from raw bytes;
// typically used with a binary-flagged MIMEType to suppress gzip.
func Bytes(t MIMEType, body []byte) *Response {
	return &Response{Status: 200, Type: t, Body: body}
}

// Empty builds a response with the given status and no body.
func Empty(status int) *Response {
	return &Response{Status: status, Type: TextPlain}
}

// StatusResponse builds a bodiless response carrying only a status code,
// used by the router/driver for 404/405/413/400/500.
func StatusResponse(status int) *Response {
	return Empty(status)
}

// NotFound is a convenience for the common 404 case.
func NotFound() *Response {
	return Empty(404)
}

// Redirect builds a 302 response with a Location header, mirroring the
// donor source's redirect() helper.
func Redirect(location string) *Response {
	r := Empty(302)
	r.Header("Location", location)
	return r
}

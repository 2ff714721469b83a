package ember

import "strings"

// duplicatableHeaders is the closed set of header names permitted to repeat
// on a request; every other name appearing twice makes the request invalid
// (spec.md §3, §4.2 step 4).
var duplicatableHeaders = map[string]bool{
	"set-cookie":         true,
	"warning":            true,
	"www-authenticate":   true,
	"proxy-authenticate": true,
	"accept":             true,
	"via":                true,
	"accept-language":    true,
	"link":               true,
	"forwarded":          true,
}

// Header is the request's case-folded header multimap. Values are keyed by
// their lowercased name; Single/List cardinality follows multiMap.
type Header struct {
	mm multiMap
}

// NewHeader returns a ready-to-use, empty Header.
func NewHeader() Header {
	return Header{mm: multiMap{m: make(map[string]*values)}}
}

func (h *Header) ensure() {
	if h.mm.m == nil {
		h.mm.m = make(map[string]*values)
	}
}

// addParsed is used exclusively by the request parser. It enforces the
// duplicate-header policy: a second occurrence of a name outside
// duplicatableHeaders is rejected rather than silently promoted to a list.
func (h *Header) addParsed(name, value string) bool {
	h.ensure()
	name = strings.ToLower(name)
	if h.mm.has(name) && !duplicatableHeaders[name] {
		return false
	}
	h.mm.add(name, value)
	return true
}

// Add appends a value unconditionally, promoting a prior single value into a
// list. Use this when building headers programmatically (e.g. response extra
// headers); the request parser uses addParsed instead to apply the
// duplicate-name policy.
func (h *Header) Add(name, value string) {
	h.ensure()
	h.mm.add(strings.ToLower(name), value)
}

// Get returns the first value stored under name, if any.
func (h Header) Get(name string) (string, bool) {
	if h.mm.m == nil {
		return "", false
	}
	return h.mm.get(strings.ToLower(name))
}

// GetOr returns Get's value or def if the header is absent.
func (h Header) GetOr(name, def string) string {
	if v, ok := h.Get(name); ok {
		return v
	}
	return def
}

// List returns every value stored under name, in insertion order.
func (h Header) List(name string) []string {
	if h.mm.m == nil {
		return nil
	}
	return h.mm.list(strings.ToLower(name))
}

// Has reports whether name was seen at all.
func (h Header) Has(name string) bool {
	if h.mm.m == nil {
		return false
	}
	return h.mm.has(strings.ToLower(name))
}

// ContainsFold reports whether name's value contains needle, case-insensitively.
// Used for Accept-Encoding/Expect substring checks (spec.md §4.2 step 7, §4.3 step 3).
func (h Header) ContainsFold(name, needle string) bool {
	v, ok := h.Get(name)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(v), strings.ToLower(needle))
}

// EqualsFold reports whether name's value equals want, case-insensitively.
func (h Header) EqualsFold(name, want string) bool {
	v, ok := h.Get(name)
	if !ok {
		return false
	}
	return strings.EqualFold(v, want)
}

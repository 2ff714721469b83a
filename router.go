package ember

import "strings"

// route is one registered (method, pattern, handler) entry. Registration
// order matters: dispatch keeps the first entry whose path and method both
// match (spec.md §4.4 step 2).
type route struct {
	method  Method
	pattern string
	segs    []string
	handler Handler
}

// RouteTable is the deliberately simple ordered-list linear-scan router
// spec.md §4.4 calls for — not the donor routing framework's radix tree
// (see DESIGN.md for why that structure doesn't fit this surface).
type RouteTable struct {
	routes []route
}

func newRouteTable() *RouteTable {
	return &RouteTable{}
}

func (rt *RouteTable) add(method Method, pattern string, handler Handler) {
	rt.routes = append(rt.routes, route{
		method:  method,
		pattern: pattern,
		segs:    strings.Split(pattern, "/"),
		handler: handler,
	})
}

// pathMatches implements spec.md §4.4's path_matches: equal segment counts
// and literal-or-":name" matching per segment when the pattern carries a
// parameter, plain equality otherwise.
func pathMatches(segs []string, pattern, path string) bool {
	if !strings.Contains(pattern, ":") {
		return pattern == path
	}
	pathSegs := strings.Split(path, "/")
	if len(pathSegs) != len(segs) {
		return false
	}
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			continue
		}
		if s != pathSegs[i] {
			return false
		}
	}
	return true
}

// pathParams extracts ":name" bindings per spec.md §4.4's path_params.
func pathParams(segs []string, path string) map[string]string {
	out := make(map[string]string)
	pathSegs := strings.Split(path, "/")
	if len(pathSegs) != len(segs) {
		return out
	}
	for i, s := range segs {
		if strings.HasPrefix(s, ":") {
			out[s[1:]] = pathSegs[i]
		}
	}
	return out
}

func methodMatches(routeMethod, reqMethod Method) bool {
	return routeMethod == reqMethod || routeMethod == MethodALL
}

// dispatch implements spec.md §4.4's three-step dispatch algorithm, returning
// the response to serialize. A matched handler sees its path params in
// req.PathParams.
func (rt *RouteTable) dispatch(req *Request) *Response {
	if req.Method == MethodOPTIONS {
		return rt.dispatchOptions(req.Path)
	}

	foundPath := false
	for _, r := range rt.routes {
		if !pathMatches(r.segs, r.pattern, req.Path) {
			continue
		}
		foundPath = true
		if !methodMatches(r.method, req.Method) {
			continue
		}
		req.PathParams = pathParams(r.segs, req.Path)
		return r.handler(req)
	}
	if foundPath {
		return StatusResponse(405)
	}
	return StatusResponse(404)
}

func (rt *RouteTable) dispatchOptions(path string) *Response {
	set := map[Method]bool{}
	any := false
	for _, r := range rt.routes {
		if !pathMatches(r.segs, r.pattern, path) {
			continue
		}
		any = true
		if r.method == MethodALL {
			for _, m := range allWireMethods {
				set[m] = true
			}
			continue
		}
		set[r.method] = true
	}
	if !any {
		return StatusResponse(404)
	}
	set[MethodOPTIONS] = true

	names := make([]string, 0, len(set))
	for m := range set {
		names = append(names, m.String())
	}
	names = sortedStrings(names)

	resp := Empty(200)
	resp.Header("Allow", strings.Join(names, ", "))
	return resp
}

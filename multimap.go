package ember

// values holds zero, one, or many strings under a single key, promoting from
// a scalar to a list on the second insertion rather than allocating a slice
// for every key up front (spec.md §3, "Header multimap").
type values struct {
	set    bool
	single string
	list   []string
}

func (v *values) add(s string) {
	if !v.set {
		v.single, v.set = s, true
		return
	}
	if v.list == nil {
		v.list = []string{v.single, s}
		return
	}
	v.list = append(v.list, s)
}

func (v values) first() (string, bool) {
	if !v.set {
		return "", false
	}
	if v.list != nil {
		return v.list[0], true
	}
	return v.single, true
}

func (v values) all() []string {
	if !v.set {
		return nil
	}
	if v.list != nil {
		return v.list
	}
	return []string{v.single}
}

// multiMap is an always-promoting multimap: any key may repeat. It backs
// query-string parameters, where scenario 8 of spec.md requires
// "?k1=v1&k1=v2&k2=" to yield k1->[v1,v2], k2->[""] with no rejection.
type multiMap struct {
	m map[string]*values
}

func newMultiMap() *multiMap {
	return &multiMap{m: make(map[string]*values)}
}

func (m *multiMap) add(key, value string) {
	v, ok := m.m[key]
	if !ok {
		v = &values{}
		m.m[key] = v
	}
	v.add(value)
}

func (m *multiMap) get(key string) (string, bool) {
	v, ok := m.m[key]
	if !ok {
		return "", false
	}
	return v.first()
}

func (m *multiMap) list(key string) []string {
	v, ok := m.m[key]
	if !ok {
		return nil
	}
	return v.all()
}

func (m *multiMap) has(key string) bool {
	_, ok := m.m[key]
	return ok
}

func (m *multiMap) keys() []string {
	out := make([]string, 0, len(m.m))
	for k := range m.m {
		out = append(out, k)
	}
	return out
}

package ember

import (
	"reflect"
	"testing"
)

func TestValuesAddPromotesToList(t *testing.T) {
	var v values
	v.add("a")
	if got, ok := v.first(); !ok || got != "a" {
		t.Fatalf("first() = %q, %v, want a, true", got, ok)
	}
	v.add("b")
	if got := v.all(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("all() = %v, want [a b]", got)
	}
	v.add("c")
	if got := v.all(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("all() after third add = %v, want [a b c]", got)
	}
}

func TestValuesZeroValue(t *testing.T) {
	var v values
	if _, ok := v.first(); ok {
		t.Fatalf("first() on unset values returned ok=true")
	}
	if got := v.all(); got != nil {
		t.Fatalf("all() on unset values = %v, want nil", got)
	}
}

func TestMultiMapQueryStringRoundTrip(t *testing.T) {
	// spec.md §8: "?k1=v1&k1=v2&k2=" -> k1->[v1,v2], k2->[""]
	m := newMultiMap()
	parseQueryInto(m, "k1=v1&k1=v2&k2=")

	if got := m.list("k1"); !reflect.DeepEqual(got, []string{"v1", "v2"}) {
		t.Fatalf("list(k1) = %v, want [v1 v2]", got)
	}
	if got := m.list("k2"); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("list(k2) = %v, want ['']", got)
	}
}

func TestMultiMapMissingEqualsYieldsEmptyValue(t *testing.T) {
	m := newMultiMap()
	parseQueryInto(m, "flag")
	if got, ok := m.get("flag"); !ok || got != "" {
		t.Fatalf("get(flag) = %q, %v, want \"\", true", got, ok)
	}
}

func TestMultiMapHasAndKeys(t *testing.T) {
	m := newMultiMap()
	m.add("a", "1")
	m.add("b", "2")
	if !m.has("a") {
		t.Fatalf("has(a) = false, want true")
	}
	if m.has("z") {
		t.Fatalf("has(z) = true, want false")
	}
	keys := m.keys()
	if len(keys) != 2 {
		t.Fatalf("keys() = %v, want 2 entries", keys)
	}
}

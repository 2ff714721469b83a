package bufpool

import "testing"

func TestGetReturnsEmptyBuffer(t *testing.T) {
	b := Get()
	defer Put(b)
	if len(b.B) != 0 {
		t.Fatalf("Get() returned a non-empty buffer: %d bytes", len(b.B))
	}
}

func TestPutAllowsReuse(t *testing.T) {
	b := Get()
	b.WriteString("hello")
	Put(b)

	b2 := Get()
	defer Put(b2)
	if len(b2.B) != 0 {
		t.Fatalf("buffer pulled after Put carries stale content: %q", b2.B)
	}
}

func TestGetPutWriteContent(t *testing.T) {
	b := Get()
	defer Put(b)
	b.WriteString("abc")
	if string(b.B) != "abc" {
		t.Fatalf("buffer content = %q, want abc", b.B)
	}
}

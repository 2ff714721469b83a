package ember

import "testing"

func TestRequestQueryAndQueryList(t *testing.T) {
	req := newRequest()
	req.query.add("k1", "v1")
	req.query.add("k1", "v2")
	req.query.add("k2", "")

	got, ok := req.Query("k1")
	if !ok || got != "v1" {
		t.Fatalf("Query(k1) = (%q, %v), want (v1, true)", got, ok)
	}
	if list := req.QueryList("k1"); len(list) != 2 || list[0] != "v1" || list[1] != "v2" {
		t.Fatalf("QueryList(k1) = %v, want [v1 v2]", list)
	}
	if list := req.QueryList("k2"); len(list) != 1 || list[0] != "" {
		t.Fatalf("QueryList(k2) = %v, want ['']", list)
	}
	if _, ok := req.Query("missing"); ok {
		t.Fatalf("Query(missing) reported ok=true")
	}
}

func TestRequestProto(t *testing.T) {
	req := newRequest()
	req.ProtoMinor = 1
	if req.Proto() != "HTTP/1.1" {
		t.Errorf("Proto() = %q, want HTTP/1.1", req.Proto())
	}
	req.ProtoMinor = 0
	if req.Proto() != "HTTP/1.0" {
		t.Errorf("Proto() = %q, want HTTP/1.0", req.Proto())
	}
}

func TestRequestConnClose(t *testing.T) {
	req := newRequest()
	if req.connClose() {
		t.Fatalf("connClose() true with no Connection header")
	}
	req.Header.Add("Connection", "close")
	if !req.connClose() {
		t.Fatalf("connClose() false with Connection: close header present")
	}
}

func TestRequestWantsGzip(t *testing.T) {
	req := newRequest()
	if req.wantsGzip() {
		t.Fatalf("wantsGzip() true with no Accept-Encoding header")
	}
	req.Header.Add("Accept-Encoding", "gzip, deflate")
	if !req.wantsGzip() {
		t.Fatalf("wantsGzip() false with Accept-Encoding: gzip, deflate")
	}
}

func TestRequestWantsContinue(t *testing.T) {
	req := newRequest()
	if req.wantsContinue() {
		t.Fatalf("wantsContinue() true with no Expect header")
	}
	req.Header.Add("Expect", "100-continue")
	if !req.wantsContinue() {
		t.Fatalf("wantsContinue() false with Expect: 100-continue")
	}
}

func TestNewResponseContext(t *testing.T) {
	req := newRequest()
	req.Header.Add("Connection", "close")
	req.Header.Add("Accept-Encoding", "gzip")
	ctx := newResponseContext(req)
	if !ctx.connectionClose {
		t.Errorf("responseContext.connectionClose = false, want true")
	}
	if !ctx.acceptGzip {
		t.Errorf("responseContext.acceptGzip = false, want true")
	}
}

package ember

import "testing"

func TestStatusTextKnownCodes(t *testing.T) {
	cases := map[int]string{
		200: "OK",
		201: "Created",
		204: "No Content",
		301: "Moved Permanently",
		400: "Bad Request",
		404: "Not Found",
		405: "Method Not Allowed",
		413: "Payload Too Large",
		500: "Internal Server Error",
	}
	for code, want := range cases {
		if got := statusText(code); got != want {
			t.Errorf("statusText(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestStatusTextUnknownCode(t *testing.T) {
	if got := statusText(599); got != "Unknown" {
		t.Errorf("statusText(599) = %q, want Unknown", got)
	}
}

func TestStatusLineFormat(t *testing.T) {
	if got, want := statusLine(200), "HTTP/1.1 200 OK"; got != want {
		t.Errorf("statusLine(200) = %q, want %q", got, want)
	}
	if got, want := statusLine(599), "HTTP/1.1 599 Unknown"; got != want {
		t.Errorf("statusLine(599) = %q, want %q", got, want)
	}
}

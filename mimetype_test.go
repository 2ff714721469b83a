package ember

import "testing"

func TestMIMETypeFromNameExactMatch(t *testing.T) {
	got := MIMETypeFromName("application/json")
	if got != ApplicationJSON {
		t.Fatalf("MIMETypeFromName(application/json) = %+v, want %+v", got, ApplicationJSON)
	}
}

func TestMIMETypeFromNameWithParameters(t *testing.T) {
	got := MIMETypeFromName("text/plain; charset=utf-8")
	if got.Name != TextPlain.Name {
		t.Fatalf("MIMETypeFromName with charset param = %+v, want Name %q", got, TextPlain.Name)
	}
}

func TestMIMETypeFromNameUnknownFallsBackToBinaryOctetStream(t *testing.T) {
	got := MIMETypeFromName("application/x-made-up-type")
	if !got.IsBinary || got.Name != ApplicationOctetStream.Name {
		t.Fatalf("MIMETypeFromName(unknown) = %+v, want binary octet-stream", got)
	}
}

func TestBinaryTypesAreFlaggedForGzipSuppression(t *testing.T) {
	binary := []MIMEType{ApplicationOctetStream, ApplicationPDF, ApplicationZIP, ImagePNG, ImageJPEG}
	for _, m := range binary {
		if !m.IsBinary {
			t.Errorf("%q.IsBinary = false, want true", m.Name)
		}
	}
	text := []MIMEType{TextPlain, TextHTML, ApplicationJSON, ImageSVG}
	for _, m := range text {
		if m.IsBinary {
			t.Errorf("%q.IsBinary = true, want false", m.Name)
		}
	}
}

package ember

import "strings"

// MIMEType names a Content-Type value and records whether gzip should ever
// be applied to bodies of that type. Binary types suppress gzip negotiation
// regardless of the request's Accept-Encoding (spec.md §4.3 step 3, §8).
type MIMEType struct {
	Name     string
	IsBinary bool
}

var (
	TextPlain      = MIMEType{"text/plain; charset=utf-8", false}
	TextHTML       = MIMEType{"text/html; charset=utf-8", false}
	TextCSS        = MIMEType{"text/css", false}
	TextCSV        = MIMEType{"text/csv", false}
	TextMarkdown   = MIMEType{"text/markdown; charset=utf-8", false}
	TextJavaScript = MIMEType{"application/javascript", false}
	TextEventStream = MIMEType{"text/event-stream", false}

	ApplicationJSON           = MIMEType{"application/json", false}
	ApplicationXML            = MIMEType{"application/xml", false}
	ApplicationFormURLEncoded = MIMEType{"application/x-www-form-urlencoded", false}
	ApplicationYAML           = MIMEType{"application/x-yaml", false}
	ApplicationTOML           = MIMEType{"application/toml", false}

	ApplicationOctetStream = MIMEType{"application/octet-stream", true}
	ApplicationPDF         = MIMEType{"application/pdf", true}
	ApplicationZIP         = MIMEType{"application/zip", true}
	ApplicationGZIP        = MIMEType{"application/gzip", true}
	ApplicationTAR         = MIMEType{"application/x-tar", true}
	ApplicationWasm        = MIMEType{"application/wasm", true}

	ImagePNG  = MIMEType{"image/png", true}
	ImageJPEG = MIMEType{"image/jpeg", true}
	ImageGIF  = MIMEType{"image/gif", true}
	ImageWebP = MIMEType{"image/webp", true}
	ImageSVG  = MIMEType{"image/svg+xml", false}
	ImageICO  = MIMEType{"image/x-icon", true}

	AudioMPEG = MIMEType{"audio/mpeg", true}
	AudioOGG  = MIMEType{"audio/ogg", true}
	AudioWAV  = MIMEType{"audio/wav", true}

	VideoMP4  = MIMEType{"video/mp4", true}
	VideoWebM = MIMEType{"video/webm", true}

	FontWOFF  = MIMEType{"font/woff", true}
	FontWOFF2 = MIMEType{"font/woff2", true}
	FontTTF   = MIMEType{"font/ttf", true}

	MultipartFormData = MIMEType{"multipart/form-data", false}
)

// allMIMETypes backs MIMETypeFromName's linear lookup, mirroring the
// donor's mime table shape of "a flat list searched by name".
var allMIMETypes = []MIMEType{
	TextPlain, TextHTML, TextCSS, TextCSV, TextMarkdown, TextJavaScript, TextEventStream,
	ApplicationJSON, ApplicationXML, ApplicationFormURLEncoded, ApplicationYAML, ApplicationTOML,
	ApplicationOctetStream, ApplicationPDF, ApplicationZIP, ApplicationGZIP, ApplicationTAR, ApplicationWasm,
	ImagePNG, ImageJPEG, ImageGIF, ImageWebP, ImageSVG, ImageICO,
	AudioMPEG, AudioOGG, AudioWAV,
	VideoMP4, VideoWebM,
	FontWOFF, FontWOFF2, FontTTF,
	MultipartFormData,
}

// MIMETypeFromName finds a known MIMEType by its wire name, ignoring any
// trailing parameters (e.g. "; charset=..."). Unknown names come back as a
// binary-flagged octet-stream so an unrecognized Content-Type never silently
// becomes gzip-eligible.
func MIMETypeFromName(name string) MIMEType {
	for _, m := range allMIMETypes {
		if m.Name == name {
			return m
		}
	}
	base := func(s string) string {
		if i := strings.IndexByte(s, ';'); i >= 0 {
			s = s[:i]
		}
		return strings.TrimSpace(s)
	}
	want := base(name)
	for _, m := range allMIMETypes {
		if base(m.Name) == want {
			return m
		}
	}
	return ApplicationOctetStream
}

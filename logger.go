package ember

import "github.com/yourusername/ember/logging"

// Logger receives one Entry per completed request plus ad hoc connection
// diagnostics. A nil Config.Logger disables logging entirely; the connection
// driver checks for nil before calling out.
type Logger interface {
	Log(entry logging.Entry)
}

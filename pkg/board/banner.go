package board

import (
	"fmt"
	"io"

	"github.com/scogswell/espbridge/pkg/bridge"
)

// Banner writes the console report describing the resolved mode. This goes
// to the console, never to the passthrough channel.
func Banner(w io.Writer, cfg bridge.Config) {
	fmt.Fprintf(w, "\nUART passthrough bridge on %s\n", Identity())
	if cfg.FlashMode {
		fmt.Fprintln(w, "-> Flash programming mode enabled")
	}
	if cfg.TranslateCR {
		fmt.Fprintln(w, "-> Automatically adding \\n to \\r end of line character")
	} else {
		fmt.Fprintln(w, "-> Not changing end-of-line characters")
	}
	if cfg.LocalEcho {
		fmt.Fprintln(w, "-> Echoing input locally")
	} else {
		fmt.Fprintln(w, "-> Not echoing input locally")
	}
}

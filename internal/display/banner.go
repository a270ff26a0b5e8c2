// Package display renders the banner, measurement labels and the
// assignment table for console output.
package display

import (
	"io"

	"github.com/backmassage/solidname/internal/term"
)

const banner = `           _ _     _
 ___  ___ | (_) __| |_ __   __ _ _ __ ___   ___
/ __|/ _ \| | |/ _` + "`" + ` | '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \
\__ \ (_) | | | (_| | | | | (_| | | | | | |  __/
|___/\___/|_|_|\__,_|_| |_|\__,_|_| |_| |_|\___|
`

// PrintBanner writes the ASCII banner to w, in magenta when colors are on.
func PrintBanner(w io.Writer) {
	_, _ = term.Magenta.Fprint(w, banner)
}

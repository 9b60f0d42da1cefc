package controls

import (
	"fmt"
	"strings"
)

var helpLines = [][2]string{
	{"w", "wireframe on/off"},
	{"+/-", "increase/decrease speed"},
	{"0-8", "change color"},
	{"space", "toggle object"},
	{"enter/i", "reset simulation"},
	{"h", "display help"},
	{"q", "quit"},
}

// HelpBanner returns the key reference with the current average FPS.
func HelpBanner(fps float64) string {
	var b strings.Builder
	b.WriteString("=================== BOUNCY! ====================\n")
	for _, l := range helpLines {
		fmt.Fprintf(&b, "%-10s %s\n", l[0], l[1])
	}
	fmt.Fprintf(&b, "================= FPS: %.1f =================\n", fps)
	return b.String()
}

package hugo

import (
	"fmt"
	"strings"
)

// HighlightCode wraps content in Hugo's highlight shortcode for GDScript.
func HighlightCode(content string) string {
	return Shortcode(content, "highlight", "gdscript")
}

// Shortcode wraps content in a paired Hugo shortcode with positional
// arguments.
func Shortcode(content, name string, args ...string) string {
	open := name
	if len(args) > 0 {
		open += " " + strings.Join(args, " ")
	}
	return fmt.Sprintf("{{< %s >}}%s{{< /%s >}}", open, content, name)
}

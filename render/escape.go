package render

import "strings"

// htmlEscaper produces the exact entity set required for escaped
// interpolation. html.EscapeString in the standard library emits
// &#34; for a double quote rather than &quot;, so it's not a drop-in
// replacement here.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

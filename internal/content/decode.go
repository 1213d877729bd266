package content

import "html"

// DecodeEntities resolves HTML entities in comment bodies.
//
// Reddit re-encodes body_html on the way out, so entities arrive
// double-encoded (&amp;lt; for a literal <). Two unescape passes resolve
// everything; the pass count is fixed at two rather than looping to a
// fixed point so legitimately escaped content is never over-decoded.
func DecodeEntities(s string) string {
	return html.UnescapeString(html.UnescapeString(s))
}

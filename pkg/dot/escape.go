package dot

import "strings"

// EscapeLabel escapes a string for a plain (double-quoted) DOT label.
//
// Order matters: backslashes first so later substitutions are not
// double-escaped, then quotes, then line terminators (CR dropped, LF turned
// into the two-character "\n" so multi-line text stays on one visual line),
// then angle brackets, which the label context also interprets.
func EscapeLabel(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// EscapeHTML escapes a string for an HTML-like table cell.
//
// Ampersands are escaped first; doing them later would double-escape the
// entities introduced by the other substitutions.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}

// refIDReplacer maps the characters that are unsafe in a bare DOT node
// identifier. Applied identically everywhere a reference node is mentioned.
var refIDReplacer = strings.NewReplacer("/", "_", ".", "_")

// RefNodeID derives the graph node identifier for a reference name.
// Example: "refs/heads/feature.x" -> "ref_refs_heads_feature_x".
func RefNodeID(name string) string {
	return "ref_" + refIDReplacer.Replace(name)
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

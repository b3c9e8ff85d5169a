package output

const (
	// MaxResponseChars is the cap on the character length of any serialized
	// tool response.
	MaxResponseChars = 130000

	// TruncationMarker is appended to responses cut at MaxResponseChars.
	TruncationMarker = "...The data is too long, please shorten the request."
)

// Truncate caps s at MaxResponseChars characters and appends the truncation
// marker when it was cut. Lengths are counted in runes, not bytes. A
// truncated JSON document is returned as-is, cut mid-structure; the marker
// makes the cut obvious to the reader and no attempt is made to keep the
// result parseable.
func Truncate(s string) (string, bool) {
	// Byte length bounds rune count, so most responses skip the rune scan.
	if len(s) <= MaxResponseChars {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= MaxResponseChars {
		return s, false
	}
	return string(runes[:MaxResponseChars]) + TruncationMarker, true
}

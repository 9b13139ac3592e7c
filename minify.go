package fdon

import "github.com/fdon-format/fdon/internal/zerocopy"

// Minify strips insignificant whitespace (space, tab, line feed,
// carriage return) from raw FDON text, copying the bytes inside
// double-quoted literals unchanged. It cannot fail: an unterminated
// string just leaves the minifier's inside-string state true at end of
// input, and the resulting (structurally invalid) output is left for
// Parse to reject, exactly as spec.md §4.1 specifies.
//
// The scan tracks a single inside-string boolean toggled on each
// unescaped quote, plus a running count of consecutive backslashes so
// an escaped quote (`\"`) can be told apart from a real delimiter — the
// same two pieces of state jibby's convertCString tracks while
// skip-scanning a quoted literal, adapted here from "read from a
// bufio.Reader one byte at a time" to "scan a []byte in place", since
// Minify's contract (unlike jibby's Decoder) is a pure buffer-to-buffer
// transform with no I/O.
func Minify(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	inString := false
	backslashRun := 0

	for _, b := range raw {
		if b == '"' {
			if backslashRun%2 == 0 {
				inString = !inString
			}
			out = append(out, b)
			backslashRun = 0
			continue
		}
		if b == '\\' {
			backslashRun++
		} else {
			backslashRun = 0
		}
		if !inString && isInsignificantWhitespace(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// MinifyString is Minify for callers already holding a string,
// avoiding an extra copy round-trip through []byte on either side of
// the call.
func MinifyString(raw string) string {
	return zerocopy.String(Minify(zerocopy.Bytes(raw)))
}

func isInsignificantWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

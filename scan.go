package fdon

import "bytes"

// This file wraps bytes.IndexByte for the closing-quote and
// object-key-terminator (`:`) searches spec.md §4.2 describes as needing
// "SIMD-accelerated memchr-style primitives" with "a scalar fallback
// ... behaviorally identical". bytes.IndexByte already has exactly
// that shape (vectorized on amd64/arm64, a plain byte loop elsewhere),
// which is why no separate memchr dependency is introduced here — see
// DESIGN.md for the fuller justification. Grounded on jibby's
// peekBoundedQuote, which layers the same "fast find, then confirm"
// two-step on top of bytes.IndexByte. The end of a number lexeme is
// found separately, by a plain loop over a 256-entry byte table.

// indexUnescapedQuote finds the offset in data of the next `"` that is
// not escaped (preceded by an odd run of backslashes), or -1 if none
// exists. data must begin immediately after the literal's opening
// quote.
func indexUnescapedQuote(data []byte) int {
	off := 0
	for {
		i := bytes.IndexByte(data[off:], '"')
		if i < 0 {
			return -1
		}
		pos := off + i
		if trailingBackslashes(data[:pos])%2 == 0 {
			return pos
		}
		off = pos + 1
	}
}

// trailingBackslashes counts the run of `\` bytes at the end of data.
func trailingBackslashes(data []byte) int {
	n := 0
	for i := len(data) - 1; i >= 0 && data[i] == '\\'; i-- {
		n++
	}
	return n
}

const numberBodyBytes = "0123456789+-.eE"

var isNumberByte [256]bool

func init() {
	for i := 0; i < len(numberBodyBytes); i++ {
		isNumberByte[numberBodyBytes[i]] = true
	}
}

// scanNumberEnd returns the offset of the first byte in data that does
// not belong to a number lexeme (spec.md §4.2's charset {0-9,+,-,.,e,E}),
// or len(data) if the entire remainder is numeric.
func scanNumberEnd(data []byte) int {
	for i, b := range data {
		if !isNumberByte[b] {
			return i
		}
	}
	return len(data)
}

// scanKeyEnd returns the offset in data of the next `:`, or -1 if none
// exists. Object keys are bare byte slices (spec.md §4.2's Key syntax),
// so no escape awareness is needed here.
func scanKeyEnd(data []byte) int {
	return bytes.IndexByte(data, ':')
}

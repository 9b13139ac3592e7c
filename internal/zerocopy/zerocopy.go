// Package zerocopy provides the unsafe string/byte-slice conversions
// the FDON parser relies on to borrow scalar slices from its input
// buffer instead of copying them.
package zerocopy

import "unsafe"

// String reinterprets buf as a string without copying. The caller must
// not mutate buf for as long as the returned string is in use: strings
// are assumed immutable throughout the rest of the program.
func String(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	return unsafe.String(&buf[0], len(buf))
}

// Bytes reinterprets s as a []byte without copying. The returned slice
// must not be mutated.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// SPDX-License-Identifier: MIT

package treegen

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based node index to a node id.
type IDFn func(idx int) string

// DefaultIDFn returns decimal ids: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns letter ids "A", ..., "Z", "AA", "AB", ... which keep
// small hand-checked fixtures readable. Panics on a negative index.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("treegen: LetterIDFn: negative index %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}

// PrefixIDFn returns prefix+index ids, e.g. "n0", "n1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// OffsetIDFn returns decimal ids starting at base, the shape of the numeric
// skill ids found in exported tree data.
func OffsetIDFn(base int) IDFn {
	return func(idx int) string { return strconv.Itoa(base + idx) }
}

// WithPrefixIDs is shorthand for WithIDScheme(PrefixIDFn(prefix)).
func WithPrefixIDs(prefix string) Option {
	return WithIDScheme(PrefixIDFn(prefix))
}

// WithLetterIDs is shorthand for WithIDScheme(LetterIDFn).
func WithLetterIDs() Option {
	return WithIDScheme(LetterIDFn)
}

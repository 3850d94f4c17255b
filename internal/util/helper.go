package util

import "strconv"

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
// A nil src with cloneSize 0 stays nil, so cloned messages compare equal to their source.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if src == nil && cloneSize == 0 {
		return nil
	}
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// IsBlankSpace reports whether c is a space or horizontal tab.
func IsBlankSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// ParseUint32 parses s as an unsigned decimal number.
//
// Only ASCII digits are accepted: signs, whitespace and base prefixes make it fail.
func ParseUint32(s string) (uint32, bool) {
	if len(s) == 0 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}

	return uint32(v), true
}

// ContainsLineBreak reports whether s contains a CR or LF byte.
func ContainsLineBreak(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' || s[i] == '\n' {
			return true
		}
	}

	return false
}

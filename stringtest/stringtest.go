// Package stringtest provides helpers for constructing expected
// multi-line text in tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected artifact text with explicit line
// endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"function,samples",
//		"all,100",
//		"",
//	) // -> "function,samples\nall,100\n"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct input documents authored with Windows line
// endings.
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

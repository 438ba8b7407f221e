// Package telnet provides the Telnet transport for networked play: an
// acceptor, line-based connections, and ANSI styling.
package telnet

import "fmt"

// ANSI escape codes used by the session renderer.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightWhite = "\033[97m"
)

// Colorize wraps text with the given ANSI code and a reset suffix.
func Colorize(color, text string) string {
	return color + text + Reset
}

// Colorf formats and then colorizes.
func Colorf(color, format string, args ...any) string {
	return Colorize(color, fmt.Sprintf(format, args...))
}

// StripANSI removes \033[...m sequences, e.g. to compare rendered text in
// tests.
func StripANSI(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			j := i + 2
			for j < len(s) && s[j] != 'm' {
				j++
			}
			if j < len(s) {
				i = j
				continue
			}
		}
		out = append(out, s[i])
	}
	return string(out)
}

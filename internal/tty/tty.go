package tty

import (
	// standard
	"fmt"
	"os"
	"regexp"
)

// sgrRegex matches ANSI SGR sequences (colors and text attributes),
// the only kind of escape sequence listmerge emits.
var sgrRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// IsTTY returns whether the given file is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	st, err := f.Stat()
	if err != nil {
		return false
	}
	return st.Mode()&os.ModeCharDevice != 0
}

// StripAnsi removes ANSI color sequences from a string.
func StripAnsi(str string) string {
	return sgrRegex.ReplaceAllString(str, "")
}

// SmartFprintf behaves like fmt.Fprintf, but automatically strips
// ANSI sequences if the output file is not a TTY.
func SmartFprintf(f *os.File, format string, args ...interface{}) (int, error) {
	output := fmt.Sprintf(format, args...)
	if !IsTTY(f) {
		output = StripAnsi(output)
	}
	return f.WriteString(output)
}

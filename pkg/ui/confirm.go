package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm asks a yes/no question and reads one line of input. An empty
// answer or a read failure yields the default.
func Confirm(in io.Reader, out io.Writer, prompt string, def bool) bool {
	suffix := "[Y/n]"
	if !def {
		suffix = "[y/N]"
	}
	fmt.Fprintf(out, "%s %s ", prompt, suffix)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return def
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}

package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// The error was already logged and printed by the command layer;
		// a non-zero exit is the only remaining duty.
		os.Exit(1)
	}
}

package astarpa

import (
	"fmt"
	"os"
)

// Verbose gates progress output via a package-level flag. The CLI flips
// it on with -verbose.
var Verbose = false

// Logf writes a verbose progress message to stderr.
func Logf(format string, v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, v...)
}

// Logln writes a verbose progress line to stderr.
func Logln(v ...interface{}) {
	if !Verbose {
		return
	}
	fmt.Fprintln(os.Stderr, v...)
}

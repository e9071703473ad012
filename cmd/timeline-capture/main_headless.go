//go:build !portaudio

// This stub lets the module build without the portaudio tag (and without
// the PortAudio C library installed). Build with -tags portaudio for the
// real live-capture command.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "timeline-capture was built without the portaudio tag; rebuild with -tags portaudio")
	os.Exit(1)
}

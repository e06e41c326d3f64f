// Package main provides the volumectl CLI tool.
//
// Usage:
//
//	volumectl [flags] <command> [args]
//
// Commands:
//
//	get        - print the volume in percent
//	set        - set the volume in percent
//	mute       - mute the default output device
//	unmute     - unmute the default output device
//	muted      - print 1 if muted, 0 if not
//	channels   - print the controllable channels
//	info       - print device, channels, volume and mute state
//	drivers    - list the audio services built into the binary
//
// Configuration:
//
//	The CLI reads ~/.volumectl/config.yaml when it exists. Flags take
//	precedence over the file.
package main

import (
	"fmt"
	"os"

	"github.com/pion/volumectl/cmd/volumectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

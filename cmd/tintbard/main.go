// Package main is the entry point for the tintbard daemon.
package main

import "github.com/tintbar-io/tintbar/internal/daemon/cmd"

func main() {
	cmd.Execute()
}

// Package main is the entry point for the hdrcheck CLI.
package main

import "hdrcheck.dev/pkg/hdrcheck/cmd"

func main() {
	cmd.Execute()
}

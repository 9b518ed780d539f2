// Package main is the entry point for the pulse CLI, a small front end for
// the weighted emitter: subscriptions are declared in a TOML file and events
// are fired from the command line or bridged in from the filesystem.
package main

func main() {
	execute()
}

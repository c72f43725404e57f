// Package main is the entry point for the jsreduce CLI.
package main

import "jsreduce.dev/pkg/jsreduce/cmd"

func main() {
	cmd.Execute()
}

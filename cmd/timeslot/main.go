// main is the entry point for the timeslot CLI.
package main

import (
	"github.com/huangsam/timeslot/cmd"
	"github.com/huangsam/timeslot/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}

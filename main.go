package main

import (
	"fmt"
	"os"

	"github.com/trunkit/trunkit/cmd"
)

func main() {
	if err := cmd.InitCommands(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize commands: %v\n", err)
		os.Exit(1)
	}
	os.Exit(cmd.Execute())
}

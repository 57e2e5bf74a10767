package main

import (
	"fmt"
	"os"

	"jam/cmd"
)

func main() {
	if err := cmd.NewJamCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}

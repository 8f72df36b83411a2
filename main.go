package main

import (
	"os"

	"github.com/jmertens/haulsched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

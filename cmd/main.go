package main

import (
	"os"

	"github.com/thom899g/autonomous-cross-d/cmd/realitygraph"
)

func main() {
	if err := realitygraph.Execute(); err != nil {
		os.Exit(1)
	}
}

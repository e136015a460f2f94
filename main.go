package main

import (
	"os"

	"github.com/szymonw/studylog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/trknhr/hmmtag/cmd"
	"github.com/trknhr/hmmtag/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"alaynorm/internal/cli"
	"alaynorm/internal/platform/config/raw"
	"alaynorm/internal/platform/logger"
)

func main() {
	// stdout carries results, so logs go to stderr and stay at warn unless asked
	opt := logger.FromEnv()
	opt.Level = raw.New().Get("LOG_LEVEL", "warn")
	opt.Service = "alaynorm"
	opt.Writer = os.Stderr
	logger.Init(opt)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

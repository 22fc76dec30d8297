// Package main is the entry point for the hmr console CLI.
package main

import (
	"fmt"
	"os"

	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/cli"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/config"
	"github.com/RobasAhmedShah/hmr-dashboard-sub002/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.DevMode)

	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

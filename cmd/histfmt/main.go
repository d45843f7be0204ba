package main

import (
	"os"

	"github.com/artesmakar/customizable-text-history-with-regexes/cmd/cli"
	"github.com/artesmakar/customizable-text-history-with-regexes/pkg/version"
)

func main() {
	cli.RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	if err := cli.RootCmd.Execute(); err != nil {
		// Cobra already prints the error, just exit with error code
		os.Exit(1)
	}
}

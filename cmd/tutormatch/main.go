package main

import (
	"os"

	"github.com/shopspring/decimal"

	"github.com/vijay-prabhu/tutormatch/internal/cli"
	"github.com/vijay-prabhu/tutormatch/internal/logging"
)

// Version information (set by build script)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	// Fees are numbers in JSON output, not strings
	decimal.MarshalJSONWithoutQuotes = true

	cli.SetVersionInfo(Version, Commit, BuildTime)
	err := cli.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}

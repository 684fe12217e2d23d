package cmd

import (
	"github.com/merkle-sys/merkle-go/cli"
)

// versionCmd represents the version command
var versionCmd = cli.NewVersionCommand("merkle")

func init() {
	RootCmd.AddCommand(versionCmd)
}

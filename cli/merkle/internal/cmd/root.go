package cmd

import (
	"github.com/merkle-sys/merkle-go/cli"
)

// RootCmd represents the base "merkle" command when called without any
// subcommands (commit, prove, verify, ...).
var RootCmd = cli.NewRootCommand("merkle",
	"Hash-based commitment tool",
	`Build a Merkle commitment over the lines of a file, generate a
compact proof that one line sits at one position under the committed
root, and verify such proofs without the file at hand.`)

// Executable command-line tool for building hash commitments over files
// and generating and verifying Merkle proofs.
package main

import (
	"github.com/merkle-sys/merkle-go/cli"
	"github.com/merkle-sys/merkle-go/cli/merkle/internal/cmd"

	_ "github.com/merkle-sys/merkle-go/crypto/hasher/blake2b"
	_ "github.com/merkle-sys/merkle-go/crypto/hasher/sha256"
	_ "github.com/merkle-sys/merkle-go/crypto/hasher/sha3"
)

func main() {
	cli.Execute(cmd.RootCmd)
}

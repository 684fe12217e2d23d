package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/merkletree"
	"github.com/merkle-sys/merkle-go/utils"
)

// commitCmd represents the commit command
var commitCmd = &cobra.Command{
	Use:   "commit <file>",
	Short: "Commit to the lines of a file",
	Long: `Build a Merkle tree over the lines of the given file and print the
root digest in hex. The root is the commitment to publish.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		commit(cmd, args[0])
	},
}

func init() {
	RootCmd.AddCommand(commitCmd)
	addCommonFlags(commitCmd)
}

func commit(cmd *cobra.Command, file string) {
	h, logger, err := setup(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}

	items, err := utils.ReadLines(file)
	if err != nil {
		logger.Fatal("Cannot read input file", "file", file, "error", err)
	}
	tree, err := merkletree.NewMerkleTree(items, h)
	if err != nil {
		logger.Fatal("Cannot build tree", "file", file, "error", err)
	}

	logger.Info("Committed to file",
		"file", file, "leaves", tree.Len(), "hasher", h.ID())
	fmt.Println(hex.EncodeToString(tree.Root()))
}

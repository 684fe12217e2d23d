package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/application"
	"github.com/merkle-sys/merkle-go/merkletree"
	"github.com/merkle-sys/merkle-go/utils"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove <file>",
	Short: "Generate a proof for one line of a file",
	Long: `Build a Merkle tree over the lines of the given file and generate a
proof that the line at --index is included under the root. The proof is
printed in its JSON form when --out is "-", and written to the --out
file otherwise.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prove(cmd, args[0])
	},
}

func init() {
	RootCmd.AddCommand(proveCmd)
	addCommonFlags(proveCmd)
	proveCmd.Flags().Uint64P("index", "i", 0, "Index of the line to prove, starting at 0")
	proveCmd.Flags().StringP("out", "o", "-", "Destination file for the JSON proof")
}

func prove(cmd *cobra.Command, file string) {
	h, logger, err := setup(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}
	index, err := cmd.Flags().GetUint64("index")
	if err != nil {
		logger.Fatal("Cannot parse index", "error", err)
	}

	items, err := utils.ReadLines(file)
	if err != nil {
		logger.Fatal("Cannot read input file", "file", file, "error", err)
	}
	tree, err := merkletree.NewMerkleTree(items, h)
	if err != nil {
		logger.Fatal("Cannot build tree", "file", file, "error", err)
	}
	proof, err := tree.GenerateProof(int(index))
	if err != nil {
		logger.Fatal("Cannot generate proof", "index", index, "error", err)
	}

	msg, err := application.MarshalProof(proof)
	if err != nil {
		logger.Fatal("Cannot marshal proof", "error", err)
	}

	logger.Info("Generated proof",
		"file", file, "index", index, "steps", proof.Len(),
		"root", hex.EncodeToString(tree.Root()))

	out := cmd.Flag("out").Value.String()
	if out == "-" {
		fmt.Println(string(msg))
		return
	}
	if err := os.WriteFile(out, msg, 0644); err != nil {
		logger.Fatal("Cannot write proof", "out", out, "error", err)
	}
}

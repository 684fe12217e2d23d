package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/application"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify <value>",
	Short: "Verify a proof against a published root",
	Long: `Verify that the given value is committed at the proof's position
under the root. Only the proof and the root are needed, not the
original file. Exits non-zero when the proof does not verify.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verify(cmd, args[0])
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	addCommonFlags(verifyCmd)
	verifyCmd.Flags().StringP("proof", "p", "proof.json", "Path to the JSON proof file")
	verifyCmd.Flags().StringP("root", "r", "", "Published root digest in hex")
	verifyCmd.MarkFlagRequired("root")
}

func verify(cmd *cobra.Command, value string) {
	h, logger, err := setup(cmd)
	if err != nil {
		fmt.Println(err)
		return
	}

	root, err := hex.DecodeString(cmd.Flag("root").Value.String())
	if err != nil {
		logger.Fatal("Cannot parse root digest", "error", err)
	}
	msg, err := os.ReadFile(cmd.Flag("proof").Value.String())
	if err != nil {
		logger.Fatal("Cannot read proof file", "error", err)
	}
	proof, err := application.UnmarshalProof(msg)
	if err != nil {
		logger.Fatal("Malformed proof", "error", err)
	}

	if !proof.Verify(h, []byte(value), root) {
		logger.Error("Proof does not verify",
			"index", proof.LeafIndex, "steps", proof.Len())
		os.Exit(1)
	}
	logger.Info("Proof verifies", "index", proof.LeafIndex)
	fmt.Println("verified")
}

package cmd

import (
	"log"
	"path"

	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/application"
	"github.com/merkle-sys/merkle-go/cli"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("the merkle tool", mkConfig)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func mkConfig(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	file := path.Join(dir, "config.toml")

	conf := application.NewConfig(file, application.DefaultHasherID,
		&application.LoggerConfig{Environment: "development"})
	if err := conf.Save(); err != nil {
		log.Print(err)
	}
}

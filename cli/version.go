package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/internal"
)

// A versionCommand is used to display an executable's version.
type versionCommand struct {
	appName string
}

var _ cobraCommand = (*versionCommand)(nil)

// NewVersionCommand constructs a new version command for the given
// executable's appName.
func NewVersionCommand(appName string) *cobra.Command {
	versCmd := &versionCommand{
		appName: appName,
	}
	return versCmd.Build()
}

// Build constructs the cobra.Command according to the versionCommand's
// settings.
func (versCmd *versionCommand) Build() *cobra.Command {
	cmd := cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + versCmd.appName + ".",
		Long:  `Print the version number of ` + versCmd.appName + `.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(versCmd.appName + " v" + internal.Version)
		},
	}
	return &cmd
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/merkle-sys/merkle-go/application"
	"github.com/merkle-sys/merkle-go/crypto/hasher"
)

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "config.toml", "Path to the tool configuration file")
	cmd.Flags().String("hasher", "", "Hash capability to use, overriding the config")
}

// setup resolves the configuration, logger and hash capability for a
// command. A missing config file is not an error; defaults apply.
func setup(cmd *cobra.Command) (hasher.TreeHasher, *application.Logger, error) {
	confPath := cmd.Flag("config").Value.String()
	conf, err := application.LoadConfig(confPath)
	if err != nil {
		conf = application.NewConfig(confPath, "",
			&application.LoggerConfig{Environment: "production"})
	}
	if override := cmd.Flag("hasher").Value.String(); override != "" {
		conf.Hasher = override
	}
	if conf.Logger == nil {
		conf.Logger = &application.LoggerConfig{Environment: "production"}
	}
	h, err := conf.TreeHasher()
	if err != nil {
		return nil, nil, err
	}
	return h, application.NewLogger(conf.Logger), nil
}

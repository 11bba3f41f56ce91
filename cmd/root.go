package cmd

import (
	"fmt"
	"os"

	"site-server/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "site-server",
	Short: "Static site server",
	Long: `site-server serves a directory of static files over HTTP.
It can also check the site for missing critical files and publish it to S3-compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// configDir is where commands look for the .env file.
var configDir string

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "Directory holding the .env file")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with debug level gives readable ISO8601 timestamps on a terminal
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

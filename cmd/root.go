package cmd

import (
	"fmt"
	"os"

	"github.com/GiyoMoon/WitchTrade-BE/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "witchtrade",
	Short: "WitchTrade marketplace backend",
	Long: `WitchTrade is the backend of a marketplace for trading Witch It items.
It serves markets, offers and wishes, and synchronizes offers with player inventories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps reads best on a terminal
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

package cmd

import (
	"fmt"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/reconcile"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	syncUserID string
	syncDryRun bool
)

// offersCmd is the parent command for offer maintenance.
var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Maintain market offers",
}

// offersSyncCmd re-runs a user's last offer sync.
var offersSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync a user's offers with their inventory",
	Long: `Re-runs offer synchronization for a user with the parameters of their last sync.

Examples:
  # Show what would change
  offers sync --user 6f1c... --dry-run

  # Apply
  offers sync --user 6f1c...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		start := time.Now()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		svc := rt.offers()
		settings, err := svc.GetSyncSettings(ctx, syncUserID)
		if err != nil {
			return err
		}
		params := reconcile.ParamsFromSettings(*settings)

		var out any
		if syncDryRun {
			out, err = svc.PlanSync(ctx, syncUserID, params)
		} else {
			out, err = svc.SyncOffers(ctx, syncUserID, params)
		}
		if err != nil {
			return err
		}

		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(data))

		rt.logger.Info("Offer sync finished",
			zap.String("user", syncUserID),
			zap.Bool("dry_run", syncDryRun),
			zap.Duration("took", time.Since(start)),
		)
		return nil
	},
}

func init() {
	offersSyncCmd.Flags().StringVar(&syncUserID, "user", "", "User whose offers are synced")
	offersSyncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Print the plan without applying it")
	_ = offersSyncCmd.MarkFlagRequired("user")

	offersCmd.AddCommand(offersSyncCmd)
	RootCmd.AddCommand(offersCmd)
}

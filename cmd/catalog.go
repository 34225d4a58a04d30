package cmd

import (
	"context"

	"github.com/GiyoMoon/WitchTrade-BE/feature/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// catalogCmd is the parent command for catalog transfers.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Import or export the item and price catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import items.json and prices.json from storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd.Context(), "imported", (*catalog.Service).Import)
	},
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(cmd.Context(), "exported", (*catalog.Service).Export)
	},
}

func runCatalog(ctx context.Context, verb string, op func(*catalog.Service, context.Context) (*catalog.ImportResult, error)) error {
	rt, err := newRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	svc, err := rt.catalog()
	if err != nil {
		return err
	}

	res, err := op(svc, ctx)
	if err != nil {
		return err
	}
	rt.logger.Info("Catalog "+verb,
		zap.String("bucket", rt.cfg.Storage.Bucket),
		zap.Int("items", res.Items),
		zap.Int("prices", res.Prices),
	)
	return nil
}

func init() {
	catalogCmd.AddCommand(catalogImportCmd, catalogExportCmd)
	RootCmd.AddCommand(catalogCmd)
}

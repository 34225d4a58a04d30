package cmd

import (
	"fmt"
	"strings"

	"github.com/GiyoMoon/WitchTrade-BE/core/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verifySchema bool

// migrateCmd creates or verifies the database schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Creates or updates every marketplace table.
With --verify the schema is only compared against the models and missing tables
or columns are reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.close()

		if !verifySchema {
			if err := database.Migrate(rt.db); err != nil {
				return err
			}
			rt.logger.Info("Database schema migrated")
			return nil
		}

		issues, err := database.VerifySchema(rt.db)
		if err != nil {
			return err
		}
		if len(issues) == 0 {
			rt.logger.Info("Database schema is up to date")
			return nil
		}

		fmt.Println("\n=== Schema Issues ===")
		for _, issue := range issues {
			if issue.MissingTable {
				fmt.Printf("%s: table missing\n", issue.Table)
				continue
			}
			fmt.Printf("%s: missing columns %s\n", issue.Table, strings.Join(issue.MissingColumns, ", "))
		}
		rt.logger.Warn("Database schema is incomplete", zap.Int("tables", len(issues)))
		return fmt.Errorf("schema verification found %d issue(s)", len(issues))
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&verifySchema, "verify", false, "Only report missing tables and columns")
	RootCmd.AddCommand(migrateCmd)
}

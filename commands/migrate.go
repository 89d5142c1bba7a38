package commands

import (
	"fmt"

	"yumi/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and seed the admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbCfg, err := config.LoadDBConfig()
		if err != nil {
			return err
		}
		db, err := config.BootDB(dbCfg)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		sqlDB, err := db.DB()
		if err == nil {
			defer sqlDB.Close()
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

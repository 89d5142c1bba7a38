package commands

import (
	"fmt"
	"os"

	"yumi/config"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "yumi",
	Short: "YUMI marketplace backend",
	Long: `YUMI serves the REST API of the children's marketplace: accounts, child
profiles, expert availability, consultation booking, messages and expert Q&A.

Running without a subcommand starts the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if envFile != "" {
			return config.LoadEnv(envFile)
		}
		return config.LoadEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to an env file (defaults to ./.env when present)")
}

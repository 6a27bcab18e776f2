package main

import (
	"fmt"
	"os"
	"pitwall/internal/di"
	"pitwall/internal/structures"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	flags := &structures.CliFlags{}

	cmd := &cobra.Command{
		Use:   "pitwall",
		Short: "F1 second-screen companion server",
		Long: `PitWall serves a per-viewer dashboard feed of race stats alongside
a live broadcast, with sign-in, filters, profile and settings.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := di.InitApp(flags)
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "config.yaml", "Config file path (YAML)")
	cmd.Flags().BoolVarP(&flags.DebugMode, "debug", "d", false, "Also log to the console")
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"immichtree/commands"
	"immichtree/commands/immich"
	"immichtree/internal/config"
)

const immichtree = "immichtree"

func main() {
	var configPath string

	rootCmd := cobra.Command{
		Use:   immichtree,
		Short: "Migrate a local photo tree to Immich albums",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file")

	migrateCmd := cobra.Command{
		Use:   "migrate",
		Short: "Upload a directory tree to Immich, one album per folder",
		Long: `Walk a directory tree and upload its photos and videos to Immich.
Each folder containing media becomes one album, named after the folder's
path below the migration root. Files recorded in the checkpoint file from
previous runs are skipped.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error: failed to load config:", err)
				os.Exit(1)
			}

			// Flags override config file and environment values.
			if cmd.Flags().Changed("server-url") {
				cfg.ServerURL, _ = cmd.Flags().GetString("server-url")
			}
			if cmd.Flags().Changed("api-key") {
				cfg.APIKey, _ = cmd.Flags().GetString("api-key")
			}
			if cmd.Flags().Changed("parallel") {
				cfg.ParallelUploads, _ = cmd.Flags().GetInt("parallel")
			}
			if cmd.Flags().Changed("dry-run") {
				cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(os.Stderr, "error: invalid config:", err)
				os.Exit(1)
			}

			rootDir, err := cmd.Flags().GetString("root-dir")
			if err != nil || rootDir == "" {
				fmt.Fprintln(os.Stderr, "error: --root-dir is required")
				os.Exit(1)
			}
			if info, err := os.Stat(rootDir); err != nil || !info.IsDir() {
				fmt.Fprintf(os.Stderr, "error: root directory %s does not exist\n", rootDir)
				os.Exit(1)
			}

			ctx := context.Background()
			client := immich.NewClient(cfg.ServerURL, cfg.APIKey, cfg.DryRun)
			if !cfg.DryRun {
				pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				err := client.Ping(pingCtx)
				cancel()
				if err != nil {
					fmt.Fprintln(os.Stderr, "error: cannot reach Immich server:", err)
					os.Exit(1)
				}
			}

			if err := commands.Migrate(ctx, cfg, rootDir, client, commands.NewBarReporter()); err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
		},
	}
	migrateCmd.Flags().StringP("root-dir", "r", "", "Root directory containing media to migrate")
	migrateCmd.Flags().String("server-url", "", "Immich API URL (e.g. http://immich.local:2283/api)")
	migrateCmd.Flags().String("api-key", "", "Immich API key")
	migrateCmd.Flags().IntP("parallel", "p", 4, "Number of parallel uploads")
	migrateCmd.Flags().BoolP("dry-run", "d", false, "Show what would be done without uploading")
	rootCmd.AddCommand(&migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/photogroove/pgroove/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagOffline bool
	flagRefresh bool
)

var rootCmd = &cobra.Command{
	Use:   "pgroove",
	Short: "Terminal photo gallery with live filters",
	Long:  "pgroove browses a hosted photo gallery from the terminal: pick thumbnails, tune hue/ripple/noise filters, and let an external renderer paint the result.",
	RunE:  runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().BoolVar(&flagOffline, "offline", false, "browse the cached listing without fetching")
	rootCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "force a fetch even if the cache is fresh")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pgroove %s (commit: %s, built: %s)\n", version, commit, date)
		if r := update.Check(cmd.Context(), version); r != nil {
			fmt.Printf("Update available: v%s\n", r.LatestVersion)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

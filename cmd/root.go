package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/MyCarrier-DevOps/go-gitconfig/internal/trace"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath    string
	flagConfig  string
	flagOutput  string
	flagVerbose bool
)

// rootCmd is the top-level command for gitcfg.
var rootCmd = &cobra.Command{
	Use:   "gitcfg",
	Short: "Typed git configuration settings",
	Long:  "gitcfg resolves git repository configuration keys into typed, semantically meaningful values, including status.showUntrackedFiles and push.default.",
	// Default action is show.
	RunE: showRunE,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			trace.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", ".", "path to the git repository")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a gitcfg config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: text or json")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log lookup timing spans to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

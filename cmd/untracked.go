package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MyCarrier-DevOps/go-gitconfig/internal/config"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/output"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"

	"github.com/spf13/cobra"
)

var untrackedFilesCmd = &cobra.Command{
	Use:   "untracked-files",
	Short: "Resolve the status.showUntrackedFiles setting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, err := git.Open(flagPath)
		if err != nil {
			return fmt.Errorf("opening repository: %w", err)
		}

		mode, err := settings.ResolveUntrackedFilesMode(repo)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagOutput == config.OutputJSON {
			data, err := json.MarshalIndent(output.UntrackedFilesReport{
				Mode:                  mode.String(),
				IncludesNone:          mode.IncludesNone(),
				IncludesUntracked:     mode.IncludesUntracked(),
				RecursesUntrackedDirs: mode.RecursesUntrackedDirs(),
			}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling mode: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, mode)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(untrackedFilesCmd)
}

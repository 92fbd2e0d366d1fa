package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MyCarrier-DevOps/go-gitconfig/internal/config"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"

	"github.com/spf13/cobra"
)

var pushDefaultCmd = &cobra.Command{
	Use:   "push-default",
	Short: "Resolve the push.default setting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		repo, err := git.Open(flagPath)
		if err != nil {
			return fmt.Errorf("opening repository: %w", err)
		}

		strategy, err := settings.ResolvePushDefaultStrategy(repo)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagOutput == config.OutputJSON {
			data, err := json.MarshalIndent(struct {
				PushDefault string `json:"pushDefault"`
			}{PushDefault: strategy.String()}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling strategy: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintln(out, strategy)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pushDefaultCmd)
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MyCarrier-DevOps/go-gitconfig/internal/config"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"

	"github.com/spf13/cobra"
)

var flagQuiet bool

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a raw configuration value",
	Long:  "get reads a single configuration key from the repository's layered config store. An unset key is not an error; it prints (unset) unless --quiet is given.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := git.Open(flagPath)
		if err != nil {
			return fmt.Errorf("opening repository: %w", err)
		}

		key := args[0]
		value, err := settings.GetString(repo, key)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if flagOutput == config.OutputJSON {
			data, err := json.MarshalIndent(struct {
				Key   string  `json:"key"`
				Value *string `json:"value"`
				Set   bool    `json:"set"`
			}{Key: key, Value: value, Set: value != nil}, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling value: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if value == nil {
			if !flagQuiet {
				fmt.Fprintln(out, "(unset)")
			}
			return nil
		}
		fmt.Fprintln(out, *value)
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "print nothing for unset keys")
	rootCmd.AddCommand(getCmd)
}

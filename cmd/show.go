package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MyCarrier-DevOps/go-gitconfig/internal/config"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/git"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/output"
	"github.com/MyCarrier-DevOps/go-gitconfig/internal/settings"

	"github.com/spf13/cobra"
)

// configFileNames lists the files searched for tool configuration in order.
// Checks .github/ first, then the repo root directory.
var configFileNames = []string{
	".github/go-gitconfig.yml",
	"go-gitconfig.yml",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Resolve every supported setting and print a report",
	RunE:  showRunE,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showRunE(cmd *cobra.Command, _ []string) error {
	// 1. Open repository.
	repo, err := git.Open(flagPath)
	if err != nil {
		return fmt.Errorf("opening repository: %w", err)
	}

	// 2. Load tool configuration.
	ec, err := loadEffectiveConfig(repo.WorkingDirectory())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// 3. Resolve the typed settings.
	mode, err := settings.ResolveUntrackedFilesMode(repo)
	if err != nil {
		return err
	}

	strategy, err := settings.ResolvePushDefaultStrategy(repo)
	if err != nil {
		return err
	}

	// 4. Fetch any extra raw keys.
	var extra map[string]*string
	if len(ec.ShowKeys) > 0 {
		extra = make(map[string]*string, len(ec.ShowKeys))
		for _, key := range ec.ShowKeys {
			v, err := settings.GetString(repo, key)
			if err != nil {
				return err
			}
			extra[key] = v
		}
	}

	// 5. Assemble and write the report.
	branch, _ := repo.Head()
	reportPath := repo.WorkingDirectory()
	if repo.IsBare() {
		reportPath = repo.Path()
	}
	report := output.NewReport(reportPath, branch, mode, strategy, extra)

	return writeReport(cmd.OutOrStdout(), ec, report)
}

// loadEffectiveConfig loads the tool configuration from a file or defaults,
// with flags taking precedence over file values.
func loadEffectiveConfig(workDir string) (config.EffectiveConfiguration, error) {
	cfg := &config.Config{}

	configPath := flagConfig
	if configPath == "" {
		configPath = findConfigFile(workDir)
	}
	if configPath != "" {
		fileCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return config.EffectiveConfiguration{}, err
		}
		cfg = fileCfg
	}

	if flagOutput != "" {
		o := flagOutput
		cfg = config.Merge(cfg, &config.Config{Output: &o})
	}

	return config.NewEffectiveConfiguration(cfg)
}

// findConfigFile searches for a tool config file in the working directory.
func findConfigFile(dir string) string {
	if dir == "" {
		return ""
	}
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func writeReport(w io.Writer, ec config.EffectiveConfiguration, report output.Report) error {
	switch ec.Output {
	case config.OutputJSON:
		return output.WriteJSON(w, report)
	default:
		return output.WriteText(w, report)
	}
}

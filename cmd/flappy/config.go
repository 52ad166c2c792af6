package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	flagDefaults bool
	flagDumpTier string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the tuning configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective tuning config as YAML",
	Long: `Print the tuning config that 'play' and 'serve' would use.

Search order: --config, ~/.flappy/configs/flappy.yaml, ./configs/flappy.yaml,
then the built-in defaults.

Examples:
  flappy config dump
  flappy config dump --defaults
  flappy config dump --tier hard
  flappy config dump --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfigDump,
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults, ignoring config files")
	configDumpCmd.Flags().StringVar(&flagDumpTier, "tier", "", "Print only one difficulty profile (easy, normal, hard or 1-3)")
	configCmd.AddCommand(configDumpCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var data []byte
	if flagDumpTier != "" {
		tier, tierErr := config.ParseTier(flagDumpTier)
		if tierErr != nil {
			return tierErr
		}
		data, err = config.MarshalProfile(cfg.Profile(tier))
	} else {
		data, err = config.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-ultra/internal/config"
)

var flagConfigPath bool

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration a game would use, after the search order
(--config, ~/.snake/config.yaml, ./configs/snake.yaml, built-in defaults)
and the variant preset are applied. Redirect it to a file to start your own.

Examples:
  snake config
  snake config steady
  snake config > ~/.snake/config.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigPath, "path", false, "Print the user config path instead")
}

func runConfig(_ *cobra.Command, args []string) error {
	if flagConfigPath {
		fmt.Println(config.UserConfigPath())
		return nil
	}

	a, err := newApp()
	if err != nil {
		return err
	}
	variantID := ""
	if len(args) == 1 {
		variantID = args[0]
	}
	cfg, err := a.configure(variantID)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/wolfchan/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.LLM.APIKey != "" {
			cfg.LLM.APIKey = "********"
		}
		return config.Write(cmd.OutOrStdout(), cfg, config.Format(format))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := defaultConfigPath()
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create config: %w", err)
		}
		defer f.Close()
		if err := config.Write(f, config.DefaultConfig(), config.FormatFor(path)); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		fmt.Println("Wrote", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use and the search order",
	RunE: func(cmd *cobra.Command, args []string) error {
		explicit, _ := cmd.Flags().GetString("config")
		_, used, err := config.Load(explicit)
		if err != nil {
			return err
		}
		if used == "" {
			fmt.Println("No config file found; using defaults.")
		} else {
			fmt.Println("Using", used)
		}
		fmt.Println("\nSearch order:")
		for _, p := range config.SearchPaths() {
			fmt.Println("  " + p)
		}
		return nil
	},
}

func init() {
	configShowCmd.Flags().String("format", string(config.FormatTOML), "Output format: toml or yaml")
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
}

// defaultConfigPath is the first XDG location that is not an env override.
func defaultConfigPath() string {
	for _, p := range config.SearchPaths() {
		if p != os.Getenv("WOLFCHAN_CONFIG") {
			return p
		}
	}
	return "config.toml"
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/config"
	"github.com/zjrosen/knowncmd/internal/flags"
	"github.com/zjrosen/knowncmd/internal/presentation"
)

// FlagDTO is one feature flag and its configured state.
type FlagDTO struct {
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Description string `json:"description"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change knowncmd settings",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), configPath())
		return err
	},
}

var configFlagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "List feature flags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry := featureFlags()
		dtos := make([]FlagDTO, 0, len(flags.Known()))
		for _, name := range flags.Known() {
			desc, _ := flags.Describe(name)
			dtos = append(dtos, FlagDTO{Name: name, Enabled: registry.Enabled(name), Description: desc})
		}

		if jsonOutput {
			return presentation.NewFormatter(cmd.OutOrStdout(), true).FormatValue(dtos)
		}
		for _, d := range dtos {
			state := "off"
			if d.Enabled {
				state = "on"
			}
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-16s %-4s %s\n", d.Name, state, d.Description); err != nil {
				return err
			}
		}
		return nil
	},
}

var configSetFlagCmd = &cobra.Command{
	Use:     "set-flag <name> <true|false>",
	Short:   "Enable or disable a feature flag",
	Example: "  knowncmd config set-flag strict-merge true",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if _, ok := flags.Describe(name); !ok {
			return fmt.Errorf("unknown feature flag %q (known: %v)", name, flags.Known())
		}
		enabled, err := strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("flag value must be true or false, got %q", args[1])
		}

		path := configPath()
		if err := config.SetFlag(path, name, enabled, cfg.Flags); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %t (%s)\n", name, enabled, path)
		return err
	},
}

var configAddDirCmd = &cobra.Command{
	Use:   "add-dir <dir>",
	Short: "Add a declaration directory to the config",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		path := configPath()
		if err := config.AddDeclarationDir(path, dir, cfg.Declarations.Dirs); err != nil {
			return fmt.Errorf("saving %s: %w", path, err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", dir, path)
		return err
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configFlagsCmd, configSetFlagCmd, configAddDirCmd)
	rootCmd.AddCommand(configCmd)
}

package cli

import (
	"fmt"

	"github.com/folio-labs/newitem/internal/branding"
	"github.com/folio-labs/newitem/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage site settings",
	Long: `Read and write the site layout settings stored in the config file at the site root.
Environment variables (` + branding.EnvVar("<key>") + `) override values from the file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print every setting with its effective value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(siteRoot, configFile)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if cfg.FileUsed != "" {
			fmt.Fprintf(out, "# %s\n", cfg.FileUsed)
		} else {
			fmt.Fprintln(out, "# no config file, using defaults")
		}
		for _, key := range config.Keys() {
			value, _ := cfg.Get(key)
			if env, ok := config.EnvOverride(key); ok {
				fmt.Fprintf(out, "%s = %s  # from %s\n", key, value, env)
				continue
			}
			fmt.Fprintf(out, "%s = %s\n", key, value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(siteRoot, configFile)
		if err != nil {
			return err
		}
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			path = config.FilePath(siteRoot)
		}
		key, value := args[0], args[1]
		if err := config.Set(path, key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

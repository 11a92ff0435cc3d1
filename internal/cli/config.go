package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/branding"
	"github.com/vmod-tools/vmodgen/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage operator preferences",
	Long:  `Read and write vmodgen preferences stored at ~/.vmodgen/config.yaml.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		key, value := args[0], args[1]
		if !knownKey(key) {
			fmt.Printf("Note: %q is not a key vmodgen reads (known: %s)\n",
				key, strings.Join(config.KnownKeys(), ", "))
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Printf("Set %s = %s (per-run override: %s)\n", key, value, envKey(key))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a preference value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		fmt.Println(config.Get(args[0]))
		return nil
	},
}

func knownKey(key string) bool {
	for _, k := range config.KnownKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// envKey maps a dotted preference key to the environment variable that
// overrides it, e.g. init.author to VMODGEN_INIT_AUTHOR.
func envKey(key string) string {
	return branding.EnvVar(strings.ReplaceAll(key, ".", "_"))
}

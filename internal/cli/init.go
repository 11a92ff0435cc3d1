package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/branding"
	"github.com/vmod-tools/vmodgen/internal/config"
	"github.com/vmod-tools/vmodgen/internal/vmodconf"
)

// Mirrors the name pattern enforced by the vmod.conf schema.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var (
	initRoot      string
	initAuthor    string
	initVersion   string
	initCopyright string
)

func init() {
	initCmd.Flags().StringVar(&initRoot, "root", ".", "Directory to write vmod.conf into")
	initCmd.Flags().StringVar(&initAuthor, "author", "", "Author line (default: init.author preference)")
	initCmd.Flags().StringVar(&initVersion, "version", "", "Initial version (default: init.version preference)")
	initCmd.Flags().StringVar(&initCopyright, "copyright", "", "Copyright line (default: init.copyright preference)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Write a starter vmod.conf",
	Long: `Write a starter vmod.conf for a new module.

Fields not given by flag fall back to the operator preferences set via
'vmodgen config set init.author ...'; fields absent from both are left
out of the file and filled by template fallbacks at generate time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid module name %q: must match [a-z][a-z0-9_]*", name)
		}

		config.Load()
		cfg := starterConfig(name)

		path := filepath.Join(initRoot, vmodconf.FileName)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, not overwriting it", path)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling vmod.conf: %w", err)
		}
		data = append(data, '\n')
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		fmt.Printf("Wrote %s for vmod_%s\n", path, name)
		fmt.Printf("Run '%s generate' in that directory to build the skeleton.\n", branding.CLIName())
		return nil
	},
}

// starterConfig resolves initial field values from flags first and
// preferences second. RequiredLibs starts empty for the user to fill.
func starterConfig(name string) *vmodconf.Config {
	return &vmodconf.Config{
		Name:      name,
		Src:       "src",
		Author:    orPref(initAuthor, config.KeyInitAuthor),
		Version:   orPref(initVersion, config.KeyInitVersion),
		Copyright: orPref(initCopyright, config.KeyInitCopyright),
	}
}

func orPref(flagValue, key string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.Get(key)
}

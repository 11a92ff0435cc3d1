package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/prereq"
	"github.com/vmod-tools/vmodgen/internal/scaffold"
	"github.com/vmod-tools/vmodgen/internal/vmodconf"
)

var (
	generateRoot   string
	generateConfig string
	skipPrereq     bool
)

func init() {
	generateCmd.Flags().StringVar(&generateRoot, "root", ".", "Project root to generate into")
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to vmod.conf (default: <root>/vmod.conf)")
	generateCmd.Flags().BoolVar(&skipPrereq, "skip-prereq", false, "Skip the prerequisite tool check")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the vmod build skeleton",
	Long: `Generate the autotools build skeleton described by vmod.conf.

Reads <root>/vmod.conf, checks that the autotools toolchain is
installed, seeds the m4/ and src/ directories when absent, and writes
the top-level build files (overwriting existing ones). Run it again
after editing vmod.conf to refresh the boilerplate; hand-edited m4/
and src/ directories are never touched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath := generateConfig
		if cfgPath == "" {
			cfgPath = filepath.Join(generateRoot, vmodconf.FileName)
		}

		// Both gates run before anything is written, so a missing or
		// invalid config leaves the tree untouched.
		cfg, err := vmodconf.Load(cfgPath)
		if err != nil {
			return err
		}
		if !skipPrereq {
			if err := prereq.NewChecker().Check(prereq.Requirements()); err != nil {
				return err
			}
		}

		fmt.Printf("Generating skeleton for vmod_%s in %s\n", cfg.Name, generateRoot)
		result, err := scaffold.Generate(generateRoot, cfg, os.Stdout)
		if err != nil {
			return err
		}

		fmt.Printf("\nWrote %d file(s).\n", len(result.Files))
		fmt.Println("\nNext steps:")
		fmt.Println("  1. ./autogen.sh")
		fmt.Println("  2. ./configure VARNISHSRC=/path/to/varnish/source")
		fmt.Println("  3. make")
		return nil
	},
}

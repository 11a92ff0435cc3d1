package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/branding"
	"github.com/vmod-tools/vmodgen/internal/prereq"
	"github.com/vmod-tools/vmodgen/internal/scaffold"
	"github.com/vmod-tools/vmodgen/internal/vmodconf"
)

var doctorRoot string

func init() {
	doctorCmd.Flags().StringVar(&doctorRoot, "root", ".", "Project root to diagnose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the environment and project state",
	Long: `Run diagnostic checks: prerequisite tools, vmod.conf validity, and
which outputs a generate run would overwrite. Unlike generate, doctor
reports every problem instead of stopping at the first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runPrereqCheck(os.Stdout, prereq.NewChecker())
		runConfigCheck(os.Stdout, doctorRoot)
		runOutputCheck(os.Stdout, doctorRoot)
		return nil
	},
}

func runPrereqCheck(w io.Writer, c *prereq.Checker) {
	fmt.Fprintln(w, "Prerequisite check:")
	missing := c.Report(w, prereq.Requirements())
	if missing > 0 {
		fmt.Fprintf(w, "  %d missing tool(s); generate will stop at the first one.\n", missing)
	}
}

func runConfigCheck(w io.Writer, root string) {
	fmt.Fprintln(w, "Config check:")
	path := filepath.Join(root, vmodconf.FileName)
	cfg, err := vmodconf.Load(path)
	if err != nil {
		var invalid *vmodconf.InvalidError
		switch {
		case errors.Is(err, vmodconf.ErrNotFound):
			fmt.Fprintf(w, "  [MISS] %s not found (run '%s init <name>')\n", path, branding.CLIName())
		case errors.As(err, &invalid):
			fmt.Fprintf(w, "  [FAIL] %s has %d validation issue(s):\n", path, len(invalid.Issues))
			for _, issue := range invalid.Issues {
				if issue.Path != "" {
					fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
				} else {
					fmt.Fprintf(w, "    - %s\n", issue.Message)
				}
			}
		default:
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
		}
		return
	}

	fmt.Fprintf(w, "  [ OK ] %s is valid (module %s)\n", path, cfg.Name)
	if cfg.Version != "" {
		if _, err := semver.NewVersion(cfg.Version); err != nil {
			fmt.Fprintf(w, "  [WARN] version %q is not a semantic version (generate does not mind)\n", cfg.Version)
		}
	}
}

func runOutputCheck(w io.Writer, root string) {
	fmt.Fprintln(w, "Output check:")
	for _, dir := range []string{"m4", "src"} {
		if _, err := os.Stat(filepath.Join(root, dir)); err == nil {
			fmt.Fprintf(w, "  [WARN] %s/ exists; generate will leave it untouched\n", dir)
		}
	}
	overwrite := 0
	for _, name := range scaffold.TopLevelFiles() {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			fmt.Fprintf(w, "  [WARN] %s exists and will be overwritten\n", name)
			overwrite++
		}
	}
	if overwrite == 0 {
		fmt.Fprintln(w, "  [ OK ] No top-level outputs present; generate starts clean")
	}
}

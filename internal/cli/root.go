package cli

import (
	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds the autotools build skeleton for a Varnish
module (vmod) from a vmod.conf description: build scripts, documentation
stubs, and a starter source pair ready for autogen.sh.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

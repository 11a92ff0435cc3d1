package cli

import (
	"fmt"
	"os"

	"github.com/aquasecurity/table"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vmod-tools/vmodgen/internal/scaffold"
	"github.com/vmod-tools/vmodgen/internal/templates"
)

var templatesJSON bool

func init() {
	templatesCmd.Flags().BoolVar(&templatesJSON, "json", false, "Print the catalog as JSON")
	rootCmd.AddCommand(templatesCmd)
}

// catalogEntry describes one template in the listing.
type catalogEntry struct {
	Template string `json:"template"`
	Output   string `json:"output"`
	Mode     string `json:"mode"`
	Bytes    int    `json:"bytes"`
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the embedded template catalog",
	Long: `List every template baked into the binary, the output path it
produces, and the permissions it is written with. The catalog is fixed;
there is no override directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalogEntries()
		if err != nil {
			return err
		}

		if templatesJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling catalog: %w", err)
			}
			fmt.Println(string(out))
			return nil
		}

		tbl := table.New(os.Stdout)
		tbl.SetBorders(false)
		tbl.SetHeaders("Template", "Output", "Mode", "Bytes")
		for _, e := range entries {
			tbl.AddRow(e.Template, e.Output, e.Mode, fmt.Sprintf("%d", e.Bytes))
		}
		tbl.Render()
		return nil
	},
}

// catalogEntries walks the emission lists in pipeline order, so the
// listing reflects what generate actually writes.
func catalogEntries() ([]catalogEntry, error) {
	var entries []catalogEntry

	add := func(name, output, mode string) error {
		src, err := templates.Lookup(name)
		if err != nil {
			return err
		}
		entries = append(entries, catalogEntry{Template: name, Output: output, Mode: mode, Bytes: len(src)})
		return nil
	}

	for _, seed := range scaffold.SrcSeeds() {
		if err := add(seed, scaffold.SeedOutputName(seed, "<name>"), "0644"); err != nil {
			return nil, err
		}
	}
	for _, name := range scaffold.TopLevelFiles() {
		mode := "0644"
		if name == scaffold.ExecutableScript {
			mode = "0755"
		}
		if err := add(name, name, mode); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

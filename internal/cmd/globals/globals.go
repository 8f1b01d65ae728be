// Package globals provides the flag set shared by every genreforge command.
package globals

import "github.com/spf13/cobra"

// Flags holds global common flags across all commands.
type Flags struct {
	Output  string
	Quiet   bool
	Verbose bool
	NoColor bool
}

// AddFlags registers the shared flags on the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}
	pf := cmd.PersistentFlags()

	pf.StringVarP(&flags.Output, "output", "o", "",
		"Output format: table, json, yaml, wide")
	pf.BoolVarP(&flags.Quiet, "quiet", "q", false, "Minimal output")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Verbose output")
	pf.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	// Hidden aliases for --output.
	for _, alias := range []string{"format", "fmt"} {
		pf.StringVar(&flags.Output, alias, "", "")
		_ = pf.MarkHidden(alias)
	}

	return flags
}

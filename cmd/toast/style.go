package main

import (
	"github.com/spf13/cobra"

	"github.com/toasthud/toasthud/internal/style"
)

// styledCommand builds a subcommand that overlays a preset style onto the
// toast before showing it. Flags the user set explicitly win over the
// preset.
func styledCommand(s style.Style, short string) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name + " MESSAGE...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildParams(cmd, args)
			if err != nil {
				return err
			}
			s.Apply(p)
			return showToast(p)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		styledCommand(style.Success, "Show a green success toast"),
		styledCommand(style.Error, "Show a red error toast"),
		styledCommand(style.Warning, "Show an orange warning toast"),
		styledCommand(style.Info, "Show a blue info toast"),
	)
}

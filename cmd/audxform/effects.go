// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ik5/audxform"
	"github.com/ik5/audxform/effects"
)

func newEffectsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "effects",
		Short: "List the pitch effects and parameter ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

			fmt.Fprintln(w, "PITCH\tLABEL\tSEMITONES")
			for _, p := range effects.Pitches() {
				fmt.Fprintf(w, "%s\t%s\t%+g\n", p, p.Label(), p.Semitones())
			}
			if err := w.Flush(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintf(out, "scale:       %.1f to %.1f (default %.1f)\n", effects.MinScale, effects.MaxScale, a.cfg.Effects.Scale)
			fmt.Fprintf(out, "filter-size: %d to %d (default %d)\n", effects.MinFilterSize, effects.MaxFilterSize, a.cfg.Effects.FilterSize)
			fmt.Fprintf(out, "formats:     %v\n", audxform.NewDefaultRegistry().Formats())

			return nil
		},
	}
}

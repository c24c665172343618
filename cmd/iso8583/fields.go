package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List the fields of the active dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dict, err := loadProtocol(a.cfg)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "# %s\n", dict.Name())
			fmt.Fprintln(w, "FIELD\tTYPE\tLENGTH\tNAME")
			for _, id := range dict.Fields() {
				meta, _ := dict.Lookup(id)
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", id, meta.Type, meta.LengthSpec(), meta.Name)
			}
			return w.Flush()
		},
	}
}

// Package commands holds the CLI subcommands registered on the PocketBase
// root command.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"paperrate/services"
)

// NewCalcCommand returns the `calc` subcommand, which derives Req Paper,
// Total Amount and Final Total for one set of inputs without starting the
// server.
func NewCalcCommand() *cobra.Command {
	var in services.EntryInput

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate required paper and cost for one entry",
		Long: `Derives Req Paper, Total Amount and Final Total the same way the entry form does.

Cut sizes: ` + strings.Join(services.CutSizeLabels(), ", "),
		Example: `  paperrate calc --total 1000 --cut "A4 (1/4)" --rate 500 --rim 500 --printing 200 --binding 100`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := services.BuildEntry(in)
			if err != nil {
				return fmt.Errorf("invalid input: %s", describeFieldErrors(services.FieldErrors(err)))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Req Paper:    %s\n", services.FormatValue(entry.ReqPaper))
			fmt.Fprintf(out, "Total Amount: %s\n", services.FormatINR(entry.TotalAmount))
			fmt.Fprintf(out, "Final Total:  %s\n", services.FormatINR(entry.FinalTotal))
			fmt.Fprintf(out, "              %s\n", services.AmountInWords(entry.FinalTotal))
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&in.TotalPaper, "total", 0, "total sheets")
	f.StringVar(&in.CutSize, "cut", services.DefaultCutSize, "paper cut size label")
	f.Float64Var(&in.PaperRate, "rate", 0, "paper rate per rim (₹)")
	f.IntVar(&in.RimSize, "rim", 500, "sheets per rim")
	f.Float64Var(&in.Printing, "printing", 0, "printing cost (₹)")
	f.Float64Var(&in.Binding, "binding", 0, "binding cost (₹)")

	return cmd
}

func describeFieldErrors(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return strings.Join(parts, "; ")
}

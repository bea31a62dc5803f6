package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/finfold/bankstat/internal/bank"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List institutions the detector recognizes",
		Long: `List the institutions the bank detector can identify, along with the
keywords it looks for in statement text and filenames. The table is
checked in order; the first match wins.`,
		RunE: runBanks,
	}
}

func runBanks(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "Bank\tKeywords"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "────\t────────"); err != nil {
		return err
	}
	for _, inst := range bank.Institutions() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", inst.Name, strings.Join(inst.Keywords, ", ")); err != nil {
			return err
		}
	}
	return w.Flush()
}

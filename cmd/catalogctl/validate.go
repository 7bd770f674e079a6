package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a catalog file loads",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := readCatalogFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			opts := cat.Options()
			fmt.Fprintf(out, "services:      %d\n", cat.Len())
			fmt.Fprintf(out, "version:       %s\n", cat.Version())
			fmt.Fprintf(out, "skin types:    %s\n", strings.Join(opts.SkinTypes, ", "))
			fmt.Fprintf(out, "skin problems: %s\n", strings.Join(opts.SkinProblems, ", "))
			return nil
		},
	}
}

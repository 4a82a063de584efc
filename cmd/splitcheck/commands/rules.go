package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/splitkit/pkg/entry"
)

func rulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active rules per record kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.validator.RuleNames()
			p := a.validator.Policy()
			out := cmd.OutOrStdout()
			for _, kind := range []string{entry.KindProfile, entry.KindGroup, entry.KindExpense} {
				fmt.Fprintf(out, "%-8s %s\n", kind, strings.Join(names[kind], ", "))
			}
			fmt.Fprintf(out, "\nmin password length: %d\nsplit tolerance:     %s\n",
				p.MinPasswordLength, p.SplitTolerance)
			return nil
		},
	}
}

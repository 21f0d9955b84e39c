package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"alaynorm/internal/core/normalize"
	"alaynorm/internal/services/normalize/domain"
)

func (a *app) countCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "count [text...]",
		Short: "Count leet and slang events",
		Long: `Count prints "leet=N slang=M" per input. Leet includes the forced fallback.
With --all every stage counter is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return inputs(args, cmd.InOrStdin(), func(text string) error {
				res, err := s.Counts(cmd.Context(), domain.CountsInput{Text: text, Skip: a.skipList()})
				if err != nil {
					return err
				}
				if a.jsonOut {
					return writeJSON(out, res)
				}
				if !all {
					fmt.Fprintf(out, "leet=%d slang=%d\n", res.Leet, res.Slang)
					return nil
				}
				for i, st := range normalize.Stages {
					if i > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprintf(out, "%s=%d", st, res.Counts.Get(st))
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every stage counter")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"alaynorm/internal/services/normalize/domain"
)

func (a *app) normalizeCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "normalize [text...]",
		Short: "Print the formal spelling of each input",
		Long: `Normalize runs every stage over the input and prints the result.

With --trace each changed word is listed under its line as
  original -> final [stages]

Examples:
  alaynorm normalize "aku blm makan"
  alaynorm normalize --trace --skip typo < chat.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return inputs(args, cmd.InOrStdin(), func(text string) error {
				res, err := s.Normalize(cmd.Context(), domain.NormalizeInput{Text: text, Skip: a.skipList(), Trace: trace})
				if err != nil {
					return err
				}
				if a.jsonOut {
					return writeJSON(out, res)
				}
				fmt.Fprintln(out, res.Text)
				for _, tt := range res.Trace {
					if len(tt.Stages) == 0 {
						continue
					}
					names := make([]string, 0, len(tt.Stages))
					for _, st := range tt.Stages {
						names = append(names, string(st))
					}
					fmt.Fprintf(out, "  %s -> %s [%s]\n", tt.Original, tt.Final, strings.Join(names, ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "list the stages that changed each word")
	return cmd
}

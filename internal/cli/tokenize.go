package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"alaynorm/internal/services/normalize/domain"
)

func (a *app) tokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [text...]",
		Short: "Show how the input splits into tokens",
		Long: `Tokenize prints one token per line as kind<TAB>quoted text.
Word tokens go through the normalization stages; other tokens are kept as they are.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.service(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			return inputs(args, cmd.InOrStdin(), func(text string) error {
				res, err := s.Tokenize(cmd.Context(), domain.TokenizeInput{Text: text})
				if err != nil {
					return err
				}
				if a.jsonOut {
					return writeJSON(out, res)
				}
				for _, t := range res.Tokens {
					fmt.Fprintf(out, "%s\t%s\n", t.Kind, strconv.Quote(t.Text))
				}
				return nil
			})
		},
	}
}

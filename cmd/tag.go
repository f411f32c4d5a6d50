package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/corpus"
)

func newTagCmd(a *app) *cobra.Command {
	var name string
	var demo, score bool

	cmd := &cobra.Command{
		Use:   "tag [words...]",
		Short: "Tag a sentence given as arguments",
		Example: `
  hmmtag tag the dog saw the cat
  hmmtag tag --demo --score dog watch cat`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.decoder(name, demo)
			if err != nil {
				return err
			}
			words := corpus.Tokenize(strings.Join(args, " "))
			tags, logScore, err := d.Score(words)
			if err != nil {
				return err
			}

			pairs := make([]string, len(words))
			for i, w := range words {
				pairs[i] = w + "/" + tags[i]
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pairs, " "))
			if score {
				fmt.Fprintf(cmd.OutOrStdout(), "log-score: %.6f\n", logScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "model name (default from config)")
	cmd.Flags().BoolVar(&demo, "demo", false, "use the built-in demo model")
	cmd.Flags().BoolVar(&score, "score", false, "print the log-score of the best path")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/corpus"
	"github.com/trknhr/hmmtag/internal/eval"
)

func newEvalCmd(a *app) *cobra.Command {
	var sentencePath, tagPath, name string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Measure tagging accuracy on a test corpus",
		Example: `
  hmmtag eval --sentences brown-test-sentences.txt --tags brown-test-tags.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.decoder(name, false)
			if err != nil {
				return err
			}
			c, err := corpus.LoadPair(sentencePath, tagPath)
			if err != nil {
				return fmt.Errorf("failed to load test corpus: %w", err)
			}

			result, err := eval.Evaluate(cmd.Context(), d, c, a.cfg.EvalWorkers)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Accuracy: %.2f%%\n", result.Accuracy())
			fmt.Fprintln(cmd.OutOrStdout(), result.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&sentencePath, "sentences", "s", "", "path to the test sentences")
	cmd.Flags().StringVarP(&tagPath, "tags", "t", "", "path to the gold tags")
	cmd.Flags().StringVarP(&name, "name", "n", "", "model name (default from config)")
	cmd.MarkFlagRequired("sentences")
	cmd.MarkFlagRequired("tags")

	return cmd
}

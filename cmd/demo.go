package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/hmm"
)

var demoSentences = [][]string{
	{"dog", "watch", "cat", "and", "chase", "watch", "cat"},
	{"all", "dogs", "and", "rabbits", "are", "dog", "species"},
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Decode sample sentences with the built-in demo model",
		RunE: func(cmd *cobra.Command, args []string) error {
			d := hmm.NewDecoder(hmm.DemoModel())
			for _, words := range demoSentences {
				tags, err := d.Decode(words)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Observations: %v\n", words)
				fmt.Fprintf(cmd.OutOrStdout(), "Tags:         %v\n", tags)
			}
			return nil
		},
	}
}

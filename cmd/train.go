package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/corpus"
	"github.com/trknhr/hmmtag/internal/store"
	"github.com/trknhr/hmmtag/internal/worker"
)

func newTrainCmd(a *app) *cobra.Command {
	var sentencePath, tagPath, name string
	var force bool
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a model from a sentence file and its tag file",
		Example: `
  # Train the default model
  hmmtag train --sentences brown-train-sentences.txt --tags brown-train-tags.txt

  # Retrain a named model even if the corpus did not change
  hmmtag train -s simple-train-sentences.txt -t simple-train-tags.txt --name simple --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				name = a.cfg.ModelName
			}
			db, err := a.database()
			if err != nil {
				return err
			}

			w := worker.NewTrainWorker(
				store.NewSQLModelStore(db),
				store.NewSQLMetaStore(db),
				corpus.NewFileLoader(sentencePath, tagPath),
				name,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			trained, err := worker.RunSync(ctx, w, force)
			if err != nil {
				return err
			}
			if trained {
				fmt.Fprintf(cmd.OutOrStdout(), "model %s trained\n", name)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "model %s is up to date\n", name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sentencePath, "sentences", "s", "", "path to the training sentences")
	cmd.Flags().StringVarP(&tagPath, "tags", "t", "", "path to the training tags")
	cmd.Flags().StringVarP(&name, "name", "n", "", "model name (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "retrain even if the corpus did not change")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "give up training after this long")
	cmd.MarkFlagRequired("sentences")
	cmd.MarkFlagRequired("tags")

	return cmd
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/store"
)

func newModelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List trained models",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := a.database()
			if err != nil {
				return err
			}
			names, err := store.NewSQLModelStore(db).ListModels()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

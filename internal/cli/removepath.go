package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

func (a *app) newRemovePathCmd() *cobra.Command {
	var paths []string

	cmd := &cobra.Command{
		Use:   "remove-path",
		Short: MsgRemoveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			res, err := m.Remove(paths...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgRemoveSummary,
				formatBold(m.Scope().String()+":"),
				res.Removed, res.SkippedNotFound)

			if !res.Clean() {
				return errors.Newf(errors.ErrPartial,
					"%d of %d candidates were not present",
					res.SkippedNotFound, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paths, "path", nil, MsgFlagPath)
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

func (a *app) newPushPathCmd() *cobra.Command {
	var paths []string

	cmd := &cobra.Command{
		Use:   "push-path",
		Short: MsgPushShort,
		Long:  MsgPushLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			res, err := m.Push(paths...)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgPushSummaryFormat,
				formatBold(m.Scope().String()+":"),
				res.Added, res.SkippedMissing, res.SkippedDuplicate)

			if !res.Clean() {
				return errors.Newf(errors.ErrPartial,
					"%d of %d candidates were not added",
					res.SkippedMissing+res.SkippedDuplicate, len(paths))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&paths, "path", nil, MsgFlagPath)
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

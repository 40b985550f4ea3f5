package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

func (a *app) newFindPathCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "find-path",
		Short: MsgFindShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			idx, found, err := m.Find(path)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), MsgNotFound)
				return errors.Newf(errors.ErrNotFound,
					"%q is not present in the %s scope", path, m.Scope())
			}
			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Directory entry to look up")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/pkg/config"
	"github.com/arthur-debert/pathctl/pkg/errors"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with all values commented out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FilePath()
			if _, err := os.Stat(path); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), MsgConfigExists, path)
				return nil
			}

			content, err := config.GenerateConfigContent()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to generate config content")
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to create config directory")
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to write config file")
			}

			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := gotoml.Marshal(a.cfg)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to marshal config")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}

	cmd.AddCommand(initCmd)
	cmd.AddCommand(showCmd)
	return cmd
}

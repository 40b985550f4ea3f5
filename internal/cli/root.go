// Package cli wires the pathctl commands together.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/internal/version"
	"github.com/arthur-debert/pathctl/pkg/config"
	"github.com/arthur-debert/pathctl/pkg/envstore"
	"github.com/arthur-debert/pathctl/pkg/errors"
	"github.com/arthur-debert/pathctl/pkg/logging"
	"github.com/arthur-debert/pathctl/pkg/pathlist"
)

// app carries the flag values and loaded config shared by all commands.
type app struct {
	cfg       *config.Config
	verbosity int
	scopeName string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "pathctl",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Setup logging based on verbosity
			logging.SetupLogger(a.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&a.scopeName, "scope", "", MsgFlagScope)

	// Add all commands
	rootCmd.AddCommand(a.newGetPathCmd())
	rootCmd.AddCommand(a.newFindPathCmd())
	rootCmd.AddCommand(a.newPushPathCmd())
	rootCmd.AddCommand(a.newRemovePathCmd())
	rootCmd.AddCommand(a.newConfigCmd())
	rootCmd.AddCommand(newDocsCmd())

	return rootCmd
}

// scope resolves the --scope flag, falling back to the configured default.
func (a *app) scope() (envstore.Scope, error) {
	name := a.scopeName
	if name == "" {
		name = a.cfg.Scope
	}
	return envstore.ParseScope(name)
}

// manager builds the pathlist manager for the selected scope.
func (a *app) manager() (*pathlist.Manager, error) {
	sc, err := a.scope()
	if err != nil {
		return nil, err
	}
	return pathlist.New(sc, pathlist.WithSeparator(a.cfg.DelimiterOrDefault())), nil
}

// ExitCode maps an Execute error to a process exit code: 2 for partial
// outcomes (some candidates rejected or not found), 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsErrorCode(err, errors.ErrPartial) {
		return 2
	}
	return 1
}

package cli

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathctl/pkg/errors"
)

//go:embed docs/*.md
var docsFS embed.FS

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs [topic]",
		Short:     MsgDocsShort,
		Long:      MsgDocsLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: docTopics(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatBoldUpper(MsgAvailableTopics))
				for _, topic := range docTopics() {
					fmt.Fprintf(cmd.OutOrStdout(), MsgTopicItem, topic)
				}
				return nil
			}

			raw, err := docsFS.ReadFile("docs/" + args[0] + ".md")
			if err != nil {
				return errors.Newf(errors.ErrNotFound, "unknown topic %q", args[0])
			}

			// Plain markdown when piped, rendered when on a terminal
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				fmt.Fprint(cmd.OutOrStdout(), string(raw))
				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to create renderer")
			}
			out, err := renderer.Render(string(raw))
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render topic")
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// docTopics lists the embedded topic names, sorted.
func docTopics() []string {
	entries, err := docsFS.ReadDir("docs")
	if err != nil {
		return nil
	}
	var topics []string
	for _, entry := range entries {
		topics = append(topics, strings.TrimSuffix(entry.Name(), ".md"))
	}
	sort.Strings(topics)
	return topics
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/pathctl/pkg/envstore"
	"github.com/arthur-debert/pathctl/pkg/errors"
	"github.com/arthur-debert/pathctl/pkg/ui"
)

// listDocument is the structured shape for json/yaml/xml output.
type listDocument struct {
	Scope   string   `json:"scope" yaml:"scope"`
	Entries []string `json:"entries" yaml:"entries"`
}

func (a *app) newGetPathCmd() *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "get-path",
		Short: MsgGetShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.manager()
			if err != nil {
				return err
			}
			entries, err := m.List()
			if err != nil {
				return err
			}

			name := formatName
			if name == "" {
				name = a.cfg.Output.Format
			}
			format, err := ui.ParseFormat(name)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid --format")
			}
			format = ui.Resolve(format, os.Stdout)

			return renderList(cmd.OutOrStdout(), m.Scope(), entries, format)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", MsgFlagFormat)
	return cmd
}

var (
	indexStyle   = lipgloss.NewStyle().Faint(true).Width(4)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func renderList(w io.Writer, scope envstore.Scope, entries []string, format ui.Format) error {
	switch format {
	case ui.FormatJSON:
		doc := listDocument{Scope: scope.String(), Entries: entries}
		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(raw))

	case ui.FormatYAML:
		doc := listDocument{Scope: scope.String(), Entries: entries}
		raw, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(raw))

	case ui.FormatXML:
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		root := doc.CreateElement("pathlist")
		root.CreateAttr("scope", scope.String())
		for i, entry := range entries {
			el := root.CreateElement("entry")
			el.CreateAttr("index", strconv.Itoa(i))
			el.SetText(entry)
		}
		doc.Indent(2)
		raw, err := doc.WriteToString()
		if err != nil {
			return err
		}
		fmt.Fprint(w, raw)

	case ui.FormatTerminal:
		for i, entry := range entries {
			line := indexStyle.Render(strconv.Itoa(i)) + entry
			if info, err := os.Stat(entry); err != nil || !info.IsDir() {
				line += " " + missingStyle.Render("(missing)")
			}
			fmt.Fprintln(w, line)
		}

	default:
		for _, entry := range entries {
			fmt.Fprintln(w, entry)
		}
	}
	return nil
}

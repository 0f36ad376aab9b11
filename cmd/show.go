package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/presentation"
	"github.com/zjrosen/knowncmd/internal/table"
)

var showCmd = &cobra.Command{
	Use:   "show <command-id>",
	Short: "Show one command's signature, parameter docs and sources",
	Example: `  knowncmd show vscode.executeDefinitionProvider
  knowncmd show interactive.open --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := readTable(tableRequest{})
		if err != nil {
			return err
		}

		id := args[0]
		entry, ok := t.Lookup(id)
		if !ok {
			return unknownCommandError(t, id)
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout(), jsonOutput)
		return formatter.FormatSignature(presentation.FromEntry(entry))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// maxSuggestions caps the identifiers listed for an unknown command.
const maxSuggestions = 5

// unknownCommandError reports an undeclared identifier, listing commands from
// the same namespace when there are any.
func unknownCommandError(t *table.Table, id string) error {
	namespace := id
	if i := strings.LastIndex(id, "."); i > 0 {
		namespace = id[:i]
	}
	similar := t.ByPrefix(namespace)
	if len(similar) == 0 || namespace == id {
		return fmt.Errorf("unknown command %q", id)
	}

	ids := make([]string, 0, maxSuggestions)
	for _, e := range similar {
		if len(ids) == maxSuggestions {
			ids = append(ids, "...")
			break
		}
		ids = append(ids, e.ID())
	}
	return fmt.Errorf("unknown command %q (known in %s: %s)", id, namespace, strings.Join(ids, ", "))
}

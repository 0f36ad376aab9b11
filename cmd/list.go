package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/presentation"
	"github.com/zjrosen/knowncmd/internal/table"
)

var (
	listPrefix     string
	listOpaqueOnly bool
	listSources    []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List known commands and their signatures",
	Long: `List every command in the signature table with its call signature.

Use --prefix to list one namespace, --opaque to list only commands with
opaque (unknown) parameters or results, and --source to list commands
declared by a given source kind.

Examples:
  # List all commands
  knowncmd list

  # List the notebook cell commands
  knowncmd list --prefix notebook.cell

  # Commands that still have opaque declarations
  knowncmd list --opaque

  # Commands declared in user declaration files
  knowncmd list --source user

  # Parse specific fields with jq
  knowncmd list --json | jq '.[].call'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := readTable(tableRequest{})
		if err != nil {
			return err
		}

		entries := filterBySource(t.ByPrefix(listPrefix), listSources)

		dtos := presentation.FromEntries(entries)
		if listOpaqueOnly {
			dtos = filterOpaque(dtos)
		}

		formatter := presentation.NewFormatter(cmd.OutOrStdout(), jsonOutput)
		return formatter.FormatSignatures(dtos)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listPrefix, "prefix", "p", "", "Filter by namespace (e.g., vscode or notebook.cell)")
	listCmd.Flags().BoolVar(&listOpaqueOnly, "opaque", false, "Only commands with opaque parameters or results")
	listCmd.Flags().StringArrayVarP(&listSources, "source", "s", nil,
		"Filter by source kind: go, built-in or user (can be repeated)")
	rootCmd.AddCommand(listCmd)
}

// filterBySource keeps entries declared by any of the given source kinds.
// An empty kinds list keeps everything.
func filterBySource(entries []table.Entry, kinds []string) []table.Entry {
	if len(kinds) == 0 {
		return entries
	}
	want := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	result := make([]table.Entry, 0, len(entries))
	for _, e := range entries {
		for _, src := range e.Sources() {
			if want[src.Kind.String()] {
				result = append(result, e)
				break
			}
		}
	}
	return result
}

func filterOpaque(dtos []presentation.SignatureDTO) []presentation.SignatureDTO {
	result := make([]presentation.SignatureDTO, 0, len(dtos))
	for _, d := range dtos {
		if d.Opaque {
			result = append(result, d)
		}
	}
	return result
}

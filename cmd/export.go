package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/declfile"
	"github.com/zjrosen/knowncmd/internal/signature"
)

var (
	exportPrefix string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the signature table as a YAML declaration file",
	Long: `Write commands from the signature table in the declaration file format.
The output can be edited and placed in ~/.knowncmd/declarations.

Examples:
  knowncmd export --prefix vscode.executeDocument
  knowncmd export -p notebook -o ~/.knowncmd/declarations/notebook.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t, err := readTable(tableRequest{})
		if err != nil {
			return err
		}

		entries := t.ByPrefix(exportPrefix)
		sigs := make([]*signature.Signature, 0, len(entries))
		for _, e := range entries {
			sigs = append(sigs, e.Signature())
		}
		data, err := declfile.Encode(sigs)
		if err != nil {
			return fmt.Errorf("encoding declarations: %w", err)
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d commands to %s\n", len(sigs), exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportPrefix, "prefix", "p", "", "Only commands in this namespace")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

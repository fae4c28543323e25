package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/markpoint/annotate-api/internal/services/export"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <envelope.json>",
	Short: "Import annotations from a JSON export",
	Long: `Import annotations from a JSON export envelope into the local store.

Records are persisted one by one; a malformed record aborts the rest of the
batch but records imported before it stay in the store.

Example:
  annotate-api import talk_annotations.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	svc, closeDB, err := openAnnotationService()
	if err != nil {
		return err
	}
	defer closeDB()

	imported, err := export.ImportJSON(context.Background(), data, svc)
	if err != nil {
		return fmt.Errorf("imported %d annotation(s) before failure: %w", len(imported), err)
	}

	fmt.Printf("Imported %d annotation(s)\n", len(imported))
	return nil
}

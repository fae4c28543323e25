package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/markpoint/annotate-api/internal/database"
	"github.com/markpoint/annotate-api/internal/models"
	"github.com/markpoint/annotate-api/internal/services/annotations"
	"github.com/markpoint/annotate-api/internal/services/export"
	"github.com/markpoint/annotate-api/pkg/config"
	"github.com/markpoint/annotate-api/pkg/mediaid"
	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOutput   string
	exportMetadata bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <media-file>",
	Short: "Export a media file's annotations",
	Long: `Export all annotations for a media file as WebVTT, SRT or JSON.

The media file is identified by its name, size and modification time, so the
file must exist locally with the same attributes it had when annotated.

Example:
  annotate-api export talk.mp4 --format srt --output talk.srt
  annotate-api export talk.mp4 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "vtt", "export format (vtt, srt, json)")
	exportCmd.Flags().StringVar(&exportOutput, "output", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportMetadata, "metadata", true, "include category/status markers in cue text")
}

func runExport(cmd *cobra.Command, args []string) error {
	mediaID, err := mediaid.FromFile(args[0])
	if err != nil {
		return err
	}

	svc, closeDB, err := openAnnotationService()
	if err != nil {
		return err
	}
	defer closeDB()

	anns, err := svc.GetByMedia(context.Background(), mediaID, annotations.Filter{})
	if err != nil {
		return err
	}
	if len(anns) == 0 {
		return fmt.Errorf("no annotations found for %s", args[0])
	}

	var data []byte
	switch exportFormat {
	case "vtt":
		data = []byte(export.ToWebVTT(anns, exportMetadata))
	case "srt":
		data = []byte(export.ToSRT(anns, exportMetadata))
	case "json":
		data, err = export.ToJSON(anns)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", exportFormat)
	}

	if exportOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("Exported %d annotation(s) to %s\n", len(anns), exportOutput)
	return nil
}

// openAnnotationService wires up a service backed by the configured database
func openAnnotationService() (annotations.Service, func(), error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.AutoMigrate(&models.Annotation{}); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	svc := annotations.NewService(annotations.NewRepository(db.DB))
	return svc, func() { _ = db.Close() }, nil
}

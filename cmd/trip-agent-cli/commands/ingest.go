package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-cli/ui"
	"github.com/Ramya-Perumal-code/ai-trip-agent/internal/ingest"
)

var ingestDir string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load attraction dataset files into the vector store",
	Long: `Read dataset JSON files, embed their contents and upload them to the
vector store. The collection is recreated, so do not run this while the
API server is answering queries.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestDir, "dir", "d", "", "dataset directory (defaults to config)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	ui.Init(noColor)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	vectorClient, err := newVectorClient(cfg)
	if err != nil {
		return err
	}

	dir := ingestDir
	if dir == "" {
		dir = cfg.Ingestion.DatasetDir
	}

	pipeline := ingest.NewPipeline(embedder, vectorClient, logger)

	var bar *ui.ProgressBar
	pipeline.OnProgress(func(done, total int) {
		if bar == nil {
			bar = ui.NewProgressBar(int64(total), "Embedding documents")
		}
		bar.Set(int64(done))
	})

	result, err := pipeline.Run(ctx, dir)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if result.FilesFailed > 0 {
		ui.Warn("%d dataset file(s) skipped", result.FilesFailed)
	}
	ui.Success("Uploaded %d documents from %d files into %q",
		result.Documents, result.FilesLoaded, vectorClient.Collection())
	return nil
}

package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ramya-Perumal-code/ai-trip-agent/cmd/trip-agent-cli/ui"
)

var queryTimeout time.Duration

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Answer a travel query",
	Long:  "Run the full research pipeline for a travel query and print the combined answer.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().DurationVar(&queryTimeout, "timeout", 5*time.Minute, "overall query timeout")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	ui.Init(noColor)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	orchestrator, err := newOrchestrator(cfg, logger)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")

	sp := ui.NewSpinner("Researching " + query + "...")
	sp.Start()
	answer := orchestrator.Run(ctx, query)
	sp.Stop()

	ui.Heading(query)
	fmt.Println(answer)
	return nil
}

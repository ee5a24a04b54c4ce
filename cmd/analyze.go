package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/triage-api/internal/model"
	"github.com/sells-group/triage-api/internal/triage"
	"github.com/sells-group/triage-api/pkg/anthropic"
)

var analyzeConcurrency int

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Run complaint analysis on JSON batch files",
	Long:  "Reads one or more JSON files (either a bare complaint array or {\"complaints\": [...]}), runs the analysis pipeline on each, and prints the results as JSON. Useful for smoke-testing prompts without the server.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := anthropic.NewClient(cfg.Anthropic.Key)
		analyzer := triage.NewAnalyzer(client, cfg.Anthropic, cfg.Analyze)

		results := make([]*model.AnalysisResponse, len(args))

		limit := analyzeConcurrency
		if limit < 1 {
			limit = 1
		}

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(limit)
		for i, path := range args {
			i, path := i, path
			g.Go(func() error {
				batch, err := readBatch(path)
				if err != nil {
					return err
				}
				resp, err := analyzer.AnalyzeBatch(ctx, batch)
				if err != nil {
					return eris.Wrapf(err, "analyze %s", path)
				}
				results[i] = resp
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return eris.Wrap(err, "encode results")
			}
		}
		return nil
	},
}

// readBatch loads a complaint batch from a JSON file. Accepts either a bare
// array or the server's {"complaints": [...]} request shape.
func readBatch(path string) ([]model.ComplaintInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read %s", path)
	}

	var wrapper struct {
		Complaints []model.ComplaintInput `json:"complaints"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Complaints != nil {
		return wrapper.Complaints, nil
	}

	var batch []model.ComplaintInput
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, eris.Wrapf(err, "parse %s", path)
	}
	return batch, nil
}

func init() {
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 3, "max files analyzed concurrently")
	rootCmd.AddCommand(analyzeCmd)
}

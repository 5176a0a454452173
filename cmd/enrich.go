package main

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/export"
	"github.com/praguedigital/leadgen-cli/internal/finder"
	"github.com/praguedigital/leadgen-cli/internal/registry"
	"github.com/praguedigital/leadgen-cli/pkg/ares"
	"github.com/praguedigital/leadgen-cli/pkg/justice"
)

var (
	enrichInput string
	enrichCSV   string
	enrichJSON  string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Re-enrich a previously exported prospect list",
	Long: `Loads prospects from a JSON export and runs registry enrichment on each.
Useful for filling in registry data on lists collected with --no-enrich,
or refreshing stale ownership data. Does not call the Places API.

Example:
  leadgen-cli enrich --input prospects.json --csv enriched.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if enrichInput == "" {
			return eris.New("enrich: --input is required")
		}

		prospects, err := export.ReadJSON(enrichInput)
		if err != nil {
			return eris.Wrap(err, "enrich: load input")
		}
		zap.L().Info("loaded prospects", zap.Int("count", len(prospects)), zap.String("path", enrichInput))

		registryClient := registry.NewClient(
			ares.NewClient(ares.WithBaseURL(cfg.Registry.ARESBaseURL)),
			justice.NewClient(justice.WithBaseURL(cfg.Registry.JusticeBaseURL)),
		)
		defer registryClient.Close()

		f := finder.New(nil, registryClient,
			finder.WithCooldown(time.Duration(cfg.Finder.EnrichCooldownSecs)*time.Second),
		)

		enriched := f.EnrichAll(cmd.Context(), prospects)

		return writeResults(enriched, enrichCSV, enrichJSON, "enriched")
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "JSON prospect export to enrich")
	enrichCmd.Flags().StringVar(&enrichCSV, "csv", "", "CSV output path")
	enrichCmd.Flags().StringVar(&enrichJSON, "json", "", "JSON output path")

	rootCmd.AddCommand(enrichCmd)
}

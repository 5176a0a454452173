package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	queryMax      int
	queryNoEnrich bool
	queryDedupe   bool
	queryCSV      string
	queryJSON     string
)

var queryCmd = &cobra.Command{
	Use:   "query <search text>",
	Short: "Find prospects for a raw search query",
	Long: `Searches Google Places with the query as-is and enriches the hits with
ARES/rejstřík data.

Example:
  leadgen-cli query "kavárna Praha 7" --max 15 --json cafes.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		env, err := initPipeline(cfg, queryDedupe)
		if err != nil {
			return eris.Wrap(err, "query: init pipeline")
		}
		defer env.close()

		prospects := env.finder.FindByQuery(cmd.Context(), query, queryMax, !queryNoEnrich)
		zap.L().Info("prospect search complete", zap.String("query", query), zap.Int("found", len(prospects)))

		return writeResults(prospects, queryCSV, queryJSON, "query")
	},
}

func init() {
	queryCmd.Flags().IntVar(&queryMax, "max", 20, "maximum number of prospects")
	queryCmd.Flags().BoolVar(&queryNoEnrich, "no-enrich", false, "skip registry enrichment")
	queryCmd.Flags().BoolVar(&queryDedupe, "dedupe", false, "drop duplicates before capping")
	queryCmd.Flags().StringVar(&queryCSV, "csv", "", "CSV output path")
	queryCmd.Flags().StringVar(&queryJSON, "json", "", "JSON output path")

	rootCmd.AddCommand(queryCmd)
}

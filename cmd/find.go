package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/export"
	"github.com/praguedigital/leadgen-cli/internal/finder"
	"github.com/praguedigital/leadgen-cli/internal/model"
)

var (
	findCategory string
	findMax      int
	findNoEnrich bool
	findDedupe   bool
	findCSV      string
	findJSON     string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find prospects for a business category",
	Long: `Expands a category into its search phrases, searches Google Places for
each, and enriches the hits with ARES/rejstřík data.

Known categories: ` + strings.Join(finder.Categories(), ", ") + `.
An unknown category is searched verbatim.

Examples:
  leadgen-cli find --category beauty_salon --max 20
  leadgen-cli find --category spa --max 10 --no-enrich --csv spa.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if findCategory == "" {
			return eris.New("find: --category is required")
		}

		env, err := initPipeline(cfg, findDedupe)
		if err != nil {
			return eris.Wrap(err, "find: init pipeline")
		}
		defer env.close()

		prospects := env.finder.FindByCategory(cmd.Context(), findCategory, findMax, !findNoEnrich)
		zap.L().Info("prospect search complete", zap.String("category", findCategory), zap.Int("found", len(prospects)))

		return writeResults(prospects, findCSV, findJSON, findCategory)
	},
}

// writeResults exports prospects to the requested paths, defaulting to a
// timestamped pair under the configured output directory when neither
// path is given.
func writeResults(prospects []model.Prospect, csvPath, jsonPath, label string) error {
	if csvPath == "" && jsonPath == "" {
		stamp := time.Now().Format("20060102_150405")
		base := filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("prospects_%s_%s", label, stamp))
		csvPath = base + ".csv"
		jsonPath = base + ".json"
	}

	if csvPath != "" {
		if err := export.CSV(prospects, csvPath); err != nil {
			return err
		}
		fmt.Printf("saved %d prospects to %s\n", len(prospects), csvPath)
	}
	if jsonPath != "" {
		if err := export.JSON(prospects, jsonPath); err != nil {
			return err
		}
		fmt.Printf("saved %d prospects to %s\n", len(prospects), jsonPath)
	}
	return nil
}

func init() {
	findCmd.Flags().StringVar(&findCategory, "category", "", "business category to search")
	findCmd.Flags().IntVar(&findMax, "max", 20, "maximum number of prospects")
	findCmd.Flags().BoolVar(&findNoEnrich, "no-enrich", false, "skip registry enrichment")
	findCmd.Flags().BoolVar(&findDedupe, "dedupe", false, "drop cross-query duplicates before capping")
	findCmd.Flags().StringVar(&findCSV, "csv", "", "CSV output path")
	findCmd.Flags().StringVar(&findJSON, "json", "", "JSON output path")

	rootCmd.AddCommand(findCmd)
}

// Package export writes prospect lists to CSV and JSON files.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// csvColumns defines the ordered CSV output columns.
var csvColumns = []string{
	"name",
	"legal_name",
	"address",
	"phone",
	"website",
	"ico",
	"category",
	"rating",
	"reviews_count",
	"owners",
	"status",
	"google_maps_url",
	"found_at",
}

// CSV writes prospects to a CSV file at path, creating parent directories
// and overwriting any existing file.
func CSV(prospects []model.Prospect, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvColumns); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}

	for i := range prospects {
		if err := w.Write(buildRow(&prospects[i])); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}

	zap.L().Info("saved prospects", zap.Int("count", len(prospects)), zap.String("path", path))
	return nil
}

// JSON writes prospects as a JSON array at path, creating parent
// directories and overwriting any existing file. Absent fields are
// omitted; timestamps serialize as ISO-8601.
func JSON(prospects []model.Prospect, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(prospects); err != nil {
		return eris.Wrap(err, "export: encode json")
	}

	zap.L().Info("saved prospects", zap.Int("count", len(prospects)), zap.String("path", path))
	return nil
}

func createFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, eris.Wrap(err, "export: create output dir")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, eris.Wrap(err, "export: create file")
	}
	return f, nil
}

// buildRow maps a prospect to a CSV row in csvColumns order.
func buildRow(p *model.Prospect) []string {
	return []string{
		p.Name,
		p.LegalName,
		p.Address,
		p.Phone,
		p.Website,
		p.ICO,
		p.Category,
		formatFloat(p.Rating),
		formatInt(p.ReviewsCount),
		OwnersString(p.Owners),
		p.Status,
		p.GoogleMapsURL,
		formatTime(p.FoundAt),
	}
}

// OwnersString flattens owners to "Name (role); Name (role)".
func OwnersString(owners []model.Owner) string {
	parts := make([]string, 0, len(owners))
	for _, o := range owners {
		parts = append(parts, fmt.Sprintf("%s (%s)", o.Name, o.Role))
	}
	return strings.Join(parts, "; ")
}

func formatFloat(f float64) string {
	if f == 0 {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatInt(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

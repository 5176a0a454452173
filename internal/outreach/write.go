package outreach

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// WriteMessages generates one message per prospect and writes them as a
// numbered plain-text file, creating parent directories and overwriting
// any existing file.
func (g *Generator) WriteMessages(prospects []model.Prospect, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrap(err, "outreach: create output dir")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "outreach: create file")
	}
	defer f.Close() //nolint:errcheck

	divider := strings.Repeat("=", 80)

	for i := range prospects {
		p := &prospects[i]

		header := fmt.Sprintf("%s\nLead #%d: %s\n%s\n\n", divider, i+1, p.Name, divider)
		if _, err := f.WriteString(header); err != nil {
			return eris.Wrap(err, "outreach: write header")
		}

		contact := "N/A"
		if owner := p.PrimaryOwner(); owner != nil {
			contact = owner.Name
		}
		meta := fmt.Sprintf("Contact: %s\nPhone: %s\nIČO: %s\nAddress: %s\n\n--- Message ---\n\n",
			contact, orNA(p.Phone), orNA(p.ICO), orNA(p.Address))
		if _, err := f.WriteString(meta); err != nil {
			return eris.Wrap(err, "outreach: write metadata")
		}

		if _, err := f.WriteString(g.ColdMessage(p) + "\n\n"); err != nil {
			return eris.Wrap(err, "outreach: write message")
		}
	}

	zap.L().Info("saved messages", zap.Int("count", len(prospects)), zap.String("path", path))
	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

// ReadJSON loads a previously exported prospect list.
func ReadJSON(path string) ([]model.Prospect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "export: read json")
	}

	var prospects []model.Prospect
	if err := json.Unmarshal(data, &prospects); err != nil {
		return nil, eris.Wrap(err, "export: unmarshal json")
	}
	return prospects, nil
}

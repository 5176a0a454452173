package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

func TestExtractOwners_StatutoryBody(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="detail">Jan Novák – statutární orgán</div>
	</body></html>`

	owners := ExtractOwners(html, "12345678")

	require.Len(t, owners, 1)
	assert.Equal(t, model.Owner{
		Name: "Jan Novák",
		Role: "statutární orgán",
		ICO:  "12345678",
	}, owners[0])
}

func TestExtractOwners_JednatelMarker(t *testing.T) {
	t.Parallel()

	html := `<div class="detail">Jednatel: Petra Svobodová, den vzniku funkce 1. ledna 2020</div>`

	owners := ExtractOwners(html, "87654321")

	require.Len(t, owners, 1)
	assert.Equal(t, "Petra Svobodová", owners[0].Name)
	assert.Equal(t, "statutární orgán", owners[0].Role)
}

func TestExtractOwners_Partner(t *testing.T) {
	t.Parallel()

	html := `<div class="detail">Společník: Karel Dvořák, vklad 100 000 Kč</div>`

	owners := ExtractOwners(html, "12345678")

	require.Len(t, owners, 1)
	assert.Equal(t, "Karel Dvořák", owners[0].Name)
	assert.Equal(t, "společník", owners[0].Role)
}

func TestExtractOwners_BothRolesInOneSection(t *testing.T) {
	t.Parallel()

	// A section carrying both markers yields one owner per marker, both
	// from the first name-shaped match.
	html := `<div class="detail">Statutární orgán a jediný společník: Jan Novák</div>`

	owners := ExtractOwners(html, "12345678")

	require.Len(t, owners, 2)
	assert.Equal(t, "statutární orgán", owners[0].Role)
	assert.Equal(t, "společník", owners[1].Role)
	assert.Equal(t, "Jan Novák", owners[0].Name)
	assert.Equal(t, "Jan Novák", owners[1].Name)
}

func TestExtractOwners_MultipleSections(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="detail">Sídlo: Václavské náměstí 1, Praha 1</div>
		<div class="detail">Statutární orgán – jednatel: Jan Novák</div>
		<div class="detail">Společník: Marie Černá</div>
	</body></html>`

	owners := ExtractOwners(html, "12345678")

	require.Len(t, owners, 2)
	assert.Equal(t, "Jan Novák", owners[0].Name)
	assert.Equal(t, "Marie Černá", owners[1].Name)
}

func TestExtractOwners_MarkerWithoutName(t *testing.T) {
	t.Parallel()

	// Lowercase-only text never matches the name pattern.
	html := `<div class="detail">statutární orgán – údaje nejsou k dispozici</div>`

	owners := ExtractOwners(html, "12345678")
	assert.Empty(t, owners)
}

func TestExtractOwners_IgnoresOtherSections(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="header">Statutární orgán: Jan Novák</div>
		<p>Společník: Marie Černá</p>
	</body></html>`

	owners := ExtractOwners(html, "12345678")
	assert.Empty(t, owners)
}

func TestExtractOwners_EmptyAndMalformed(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ExtractOwners("", "12345678"))
	assert.Empty(t, ExtractOwners("<div class=", "12345678"))
	assert.Empty(t, ExtractOwners("plain text, no markup", "12345678"))
}

func TestExtractOwners_DiacriticNames(t *testing.T) {
	t.Parallel()

	html := `<div class="detail">Jednatel: Růžena Šťastná</div>`

	owners := ExtractOwners(html, "12345678")

	require.Len(t, owners, 1)
	assert.Equal(t, "Růžena Šťastná", owners[0].Name)
}

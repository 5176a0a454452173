package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/praguedigital/leadgen-cli/internal/model"
)

func TestMerge_RegistryWinsWhenPresent(t *testing.T) {
	t.Parallel()

	registered := time.Date(2015, 3, 10, 0, 0, 0, 0, time.UTC)

	dst := &model.Prospect{
		Name:      "Salon Krásy",
		ICO:       "11111111",
		LegalName: "Old Name s.r.o.",
		Status:    "AKTIVNI",
	}
	src := &model.Prospect{
		ICO:              "12345678",
		LegalName:        "Salon Krásy Praha s.r.o.",
		Status:           "zaniklá",
		RegistrationDate: &registered,
	}

	Merge(dst, src)

	assert.Equal(t, "12345678", dst.ICO)
	assert.Equal(t, "Salon Krásy Praha s.r.o.", dst.LegalName)
	assert.Equal(t, "zaniklá", dst.Status)
	assert.Equal(t, &registered, dst.RegistrationDate)
	assert.Equal(t, "Salon Krásy", dst.Name)
}

func TestMerge_AbsentFieldsRetained(t *testing.T) {
	t.Parallel()

	registered := time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC)

	dst := &model.Prospect{
		Name:             "Salon Krásy",
		ICO:              "11111111",
		LegalName:        "Salon Krásy s.r.o.",
		Status:           "AKTIVNI",
		RegistrationDate: &registered,
	}
	src := &model.Prospect{LegalName: "Salon Krásy Praha s.r.o."}

	Merge(dst, src)

	assert.Equal(t, "11111111", dst.ICO)
	assert.Equal(t, "Salon Krásy Praha s.r.o.", dst.LegalName)
	assert.Equal(t, "AKTIVNI", dst.Status)
	assert.Equal(t, &registered, dst.RegistrationDate)
}

func TestMerge_NilSourceIsNoOp(t *testing.T) {
	t.Parallel()

	dst := &model.Prospect{Name: "Salon Krásy", ICO: "11111111"}

	Merge(dst, nil)

	assert.Equal(t, "11111111", dst.ICO)
	assert.Equal(t, "Salon Krásy", dst.Name)
}

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeICO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "clean", in: "12000000", want: "12000000"},
		{name: "spaced", in: "120 00 000", want: "12000000"},
		{name: "mixed separators", in: "12-00.00 00", want: "12000000"},
		{name: "too short", in: "1234", wantErr: true},
		{name: "too long", in: "123456789", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "letters only", in: "abcdefgh", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeICO(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeICO_SpacedAndPlainAgree(t *testing.T) {
	t.Parallel()

	spaced, err := NormalizeICO("120 00 000")
	require.NoError(t, err)
	plain, err := NormalizeICO("12000000")
	require.NoError(t, err)

	assert.Equal(t, plain, spaced)
}

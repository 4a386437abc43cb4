package pricenorm

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Normalize(t *testing.T) {
	raw, _ := new(big.Int).SetString("20000000000000000", 10)
	tests := []struct {
		name       string
		convention Convention
		raw        *big.Int
		want       string
		wantErr    bool
	}{
		{
			name:       "base18",
			convention: ConventionBase18,
			raw:        raw,
			want:       "0.02",
		},
		{
			name:       "hundredths documented formula (raw / 10^16) / 100",
			convention: ConventionHundredths,
			raw:        raw,
			want:       "0.02",
		},
		{
			name:       "base18 one ether",
			convention: ConventionBase18,
			raw:        new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
			want:       "1",
		},
		{
			name:       "hundredths small value",
			convention: ConventionHundredths,
			raw:        big.NewInt(5),
			want:       "0.000000000000000005",
		},
		{
			name:       "nil raw",
			convention: ConventionBase18,
			raw:        nil,
			wantErr:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			n, err := New(tt.convention)
			req.NoError(err)
			got, err := n.Normalize(tt.raw)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got.String())

			// pure: same input, same output
			again, err := n.Normalize(tt.raw)
			req.NoError(err)
			req.True(got.Equal(again))
		})
	}
}

func Test_New_unknownConvention(t *testing.T) {
	_, err := New(Convention("magnitude-guessing"))
	require.Error(t, err)
}

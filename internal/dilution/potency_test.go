//go:build !integration

package dilution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMolecularWeightPotency(t *testing.T) {
	tests := []struct {
		name         string
		purchasedMW  float64
		originalMW   float64
		expected     float64
		wantDomain   bool
		wantDivision bool
	}{
		{
			name:        "identical molecular weights yield potency 1",
			purchasedMW: 137.14,
			originalMW:  137.14,
			expected:    1.0,
		},
		{
			name:        "salt form heavier than reference",
			purchasedMW: 274.28,
			originalMW:  137.14,
			expected:    2.0,
		},
		{
			name:        "hydrate lighter than reference",
			purchasedMW: 100.0,
			originalMW:  200.0,
			expected:    0.5,
		},
		{
			name:         "zero original molecular weight",
			purchasedMW:  137.14,
			originalMW:   0,
			wantDivision: true,
		},
		{
			name:        "negative original molecular weight",
			purchasedMW: 137.14,
			originalMW:  -1,
			wantDomain:  true,
		},
		{
			name:        "negative purchased molecular weight",
			purchasedMW: -137.14,
			originalMW:  137.14,
			wantDomain:  true,
		},
		{
			name:        "NaN purchased molecular weight",
			purchasedMW: math.NaN(),
			originalMW:  137.14,
			wantDomain:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			potency, err := MolecularWeightPotency(tt.purchasedMW, tt.originalMW)
			if tt.wantDomain {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				return
			}
			if tt.wantDivision {
				var divErr *DivisionUndefinedError
				require.ErrorAs(t, err, &divErr)
				assert.Equal(t, "original_molecular_weight", divErr.Denominator)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, potency, 1e-9)
		})
	}
}

func TestPurityPotency(t *testing.T) {
	tests := []struct {
		name          string
		purityPercent float64
		expected      float64
		wantErr       bool
	}{
		{
			name:          "full purity yields potency 1",
			purityPercent: 100,
			expected:      1.0,
		},
		{
			name:          "80 percent purity",
			purityPercent: 80,
			expected:      1.25,
		},
		{
			name:          "50 percent purity",
			purityPercent: 50,
			expected:      2.0,
		},
		{
			name:          "zero purity",
			purityPercent: 0,
			wantErr:       true,
		},
		{
			name:          "negative purity",
			purityPercent: -10,
			wantErr:       true,
		},
		{
			name:          "purity above 100",
			purityPercent: 100.1,
			wantErr:       true,
		},
		{
			name:          "infinite purity",
			purityPercent: math.Inf(1),
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			potency, err := PurityPotency(tt.purityPercent)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, potency, 1e-9)
		})
	}
}

func TestResolvePotency(t *testing.T) {
	tests := []struct {
		name          string
		mode          PotencyMode
		purchasedMW   float64
		originalMW    float64
		purityPercent float64
		expected      float64
		wantErr       bool
	}{
		{
			name:          "molecular weight mode ignores purity",
			mode:          PotencyFromMolecularWeight,
			purchasedMW:   274.28,
			originalMW:    137.14,
			purityPercent: 50,
			expected:      2.0,
		},
		{
			name:          "purity mode ignores molecular weights",
			mode:          PotencyFromPurity,
			purchasedMW:   0,
			originalMW:    0,
			purityPercent: 80,
			expected:      1.25,
		},
		{
			name:          "combined mode multiplies both corrections",
			mode:          PotencyCombined,
			purchasedMW:   274.28,
			originalMW:    137.14,
			purityPercent: 80,
			expected:      2.5,
		},
		{
			name:          "combined mode propagates purity error",
			mode:          PotencyCombined,
			purchasedMW:   274.28,
			originalMW:    137.14,
			purityPercent: 0,
			wantErr:       true,
		},
		{
			name:          "combined mode propagates molecular weight error",
			mode:          PotencyCombined,
			purchasedMW:   274.28,
			originalMW:    0,
			purityPercent: 80,
			wantErr:       true,
		},
		{
			name:    "unknown mode",
			mode:    PotencyMode("guesswork"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			potency, err := ResolvePotency(tt.mode, tt.purchasedMW, tt.originalMW, tt.purityPercent)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, potency, 1e-9)
		})
	}
}

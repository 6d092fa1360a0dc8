//go:build !integration

package dilution

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimatedDrugWeight(t *testing.T) {
	tests := []struct {
		name         string
		criticalConc float64
		volume       float64
		potency      float64
		expected     float64
		wantErr      bool
	}{
		{
			name:         "reference scenario",
			criticalConc: 1.0,
			volume:       10,
			potency:      1.0,
			expected:     0.84,
		},
		{
			name:         "isoniazid critical concentration",
			criticalConc: 0.1,
			volume:       10,
			potency:      1.0,
			expected:     0.084,
		},
		{
			name:         "potency scales the weight",
			criticalConc: 1.0,
			volume:       10,
			potency:      1.25,
			expected:     1.05,
		},
		{
			name:         "zero critical concentration is a valid control",
			criticalConc: 0,
			volume:       10,
			potency:      1.0,
			expected:     0,
		},
		{
			name:         "negative critical concentration",
			criticalConc: -0.1,
			volume:       10,
			potency:      1.0,
			wantErr:      true,
		},
		{
			name:         "zero volume",
			criticalConc: 1.0,
			volume:       0,
			potency:      1.0,
			wantErr:      true,
		},
		{
			name:         "zero potency",
			criticalConc: 1.0,
			volume:       10,
			potency:      0,
			wantErr:      true,
		},
		{
			name:         "infinite volume",
			criticalConc: 1.0,
			volume:       math.Inf(1),
			potency:      1.0,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, err := EstimatedDrugWeight(tt.criticalConc, tt.volume, tt.potency)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, weight, 1e-9)
		})
	}
}

func TestEstimatedDrugWeight_Linearity(t *testing.T) {
	base, err := EstimatedDrugWeight(1.0, 10, 1.0)
	require.NoError(t, err)

	t.Run("doubling critical concentration doubles the weight", func(t *testing.T) {
		doubled, err := EstimatedDrugWeight(2.0, 10, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 2*base, doubled, 1e-9)
	})

	t.Run("doubling volume doubles the weight", func(t *testing.T) {
		doubled, err := EstimatedDrugWeight(1.0, 20, 1.0)
		require.NoError(t, err)
		assert.InDelta(t, 2*base, doubled, 1e-9)
	})

	t.Run("doubling potency doubles the weight", func(t *testing.T) {
		doubled, err := EstimatedDrugWeight(1.0, 10, 2.0)
		require.NoError(t, err)
		assert.InDelta(t, 2*base, doubled, 1e-9)
	})
}

func TestDiluentVolume(t *testing.T) {
	tests := []struct {
		name         string
		estWeight    float64
		actualWeight float64
		desiredVol   float64
		expected     float64
		wantDomain   bool
		wantDivision bool
	}{
		{
			name:         "exact weighing keeps the desired volume",
			estWeight:    0.84,
			actualWeight: 0.84,
			desiredVol:   10,
			expected:     10,
		},
		{
			name:         "overweighing scales the volume up",
			estWeight:    0.84,
			actualWeight: 1.68,
			desiredVol:   10,
			expected:     20,
		},
		{
			name:         "underweighing scales the volume down",
			estWeight:    0.84,
			actualWeight: 0.42,
			desiredVol:   10,
			expected:     5,
		},
		{
			name:         "zero actual weight yields zero volume",
			estWeight:    0.84,
			actualWeight: 0,
			desiredVol:   10,
			expected:     0,
		},
		{
			name:         "zero estimated weight",
			estWeight:    0,
			actualWeight: 0.84,
			desiredVol:   10,
			wantDivision: true,
		},
		{
			name:         "negative estimated weight",
			estWeight:    -0.84,
			actualWeight: 0.84,
			desiredVol:   10,
			wantDomain:   true,
		},
		{
			name:         "negative actual weight",
			estWeight:    0.84,
			actualWeight: -0.84,
			desiredVol:   10,
			wantDomain:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol, err := DiluentVolume(tt.estWeight, tt.actualWeight, tt.desiredVol)
			if tt.wantDomain {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				return
			}
			if tt.wantDivision {
				var divErr *DivisionUndefinedError
				require.ErrorAs(t, err, &divErr)
				assert.Equal(t, "estimated_weight", divErr.Denominator)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, vol, 1e-9)
		})
	}
}

func TestStockConcentration(t *testing.T) {
	tests := []struct {
		name         string
		actualWeight float64
		diluentVol   float64
		expected     float64
		wantErr      bool
	}{
		{
			name:         "1 mg in 10 mL",
			actualWeight: 1.0,
			diluentVol:   10,
			expected:     100,
		},
		{
			name:         "zero weight yields zero concentration",
			actualWeight: 0,
			diluentVol:   10,
			expected:     0,
		},
		{
			name:         "zero diluent volume",
			actualWeight: 1.0,
			diluentVol:   0,
			wantErr:      true,
		},
		{
			name:         "negative diluent volume",
			actualWeight: 1.0,
			diluentVol:   -10,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conc, err := StockConcentration(tt.actualWeight, tt.diluentVol)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, conc, 1e-9)
		})
	}
}

func TestStockFactor(t *testing.T) {
	tests := []struct {
		name          string
		actualWeight  float64
		totalStockVol float64
		wsConc        float64
		potency       float64
		expected      float64
		wantErr       bool
	}{
		{
			name:          "stock matches working solution",
			actualWeight:  0.84,
			totalStockVol: 10,
			wsConc:        8.4,
			potency:       1.0,
			expected:      10,
		},
		{
			name:          "unit factor",
			actualWeight:  0.084,
			totalStockVol: 10,
			wsConc:        8.4,
			potency:       1.0,
			expected:      1,
		},
		{
			name:          "zero stock volume",
			actualWeight:  0.84,
			totalStockVol: 0,
			wsConc:        8.4,
			potency:       1.0,
			wantErr:       true,
		},
		{
			name:          "zero working solution concentration",
			actualWeight:  0.84,
			totalStockVol: 10,
			wsConc:        0,
			potency:       1.0,
			wantErr:       true,
		},
		{
			name:          "zero potency",
			actualWeight:  0.84,
			totalStockVol: 10,
			wsConc:        8.4,
			potency:       0,
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, err := StockFactor(tt.actualWeight, tt.totalStockVol, tt.wsConc, tt.potency)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsInputError(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, factor, 1e-9)
		})
	}
}

func TestIntermediateFactor(t *testing.T) {
	tests := []struct {
		name        string
		stockFactor float64
		totalWS     float64
		expected    float64
	}{
		{
			name:        "lowers the factor until the transfer is pipettable",
			stockFactor: 20,
			totalWS:     0.6,
			expected:    2.5,
		},
		{
			name:        "falls back to 2 when nothing workable remains",
			stockFactor: 1.05,
			totalWS:     0.01,
			expected:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, IntermediateFactor(tt.stockFactor, tt.totalWS), 1e-9)
		})
	}
}

func TestIntermediateVolume(t *testing.T) {
	t.Run("derives the intermediate volume", func(t *testing.T) {
		vol, err := IntermediateVolume(0.24, 1680, 2.5, 84)
		require.NoError(t, err)
		assert.InDelta(t, 1.92, vol, 1e-9)
	})

	t.Run("zero denominator", func(t *testing.T) {
		_, err := IntermediateVolume(0.24, 1680, 0, 84)
		var divErr *DivisionUndefinedError
		require.ErrorAs(t, err, &divErr)
	})
}

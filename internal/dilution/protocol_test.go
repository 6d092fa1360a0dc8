//go:build !integration

package dilution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtocolByName(t *testing.T) {
	tests := []struct {
		name     string
		protocol string
		expected Protocol
		wantErr  bool
	}{
		{
			name:     "who-2022 variant",
			protocol: "who-2022",
			expected: ProtocolWHO2022,
		},
		{
			name:     "classic variant",
			protocol: "classic",
			expected: ProtocolClassic,
		},
		{
			name:     "unknown variant",
			protocol: "who-2019",
			wantErr:  true,
		},
		{
			name:     "empty name",
			protocol: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ProtocolByName(tt.protocol)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestProtocol_WorkingSolutionVolume(t *testing.T) {
	tests := []struct {
		name     string
		protocol Protocol
		tubes    int
		expected float64
		wantErr  bool
	}{
		{
			name:     "who-2022 with two tubes",
			protocol: ProtocolWHO2022,
			tubes:    2,
			expected: 0.6,
		},
		{
			name:     "classic with two tubes",
			protocol: ProtocolClassic,
			tubes:    2,
			expected: 0.4,
		},
		{
			name:     "zero tubes still carries the overage",
			protocol: ProtocolWHO2022,
			tubes:    0,
			expected: 0.36,
		},
		{
			name:     "who-2022 with ten tubes",
			protocol: ProtocolWHO2022,
			tubes:    10,
			expected: 1.56,
		},
		{
			name:     "negative tube count",
			protocol: ProtocolWHO2022,
			tubes:    -1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vol, err := tt.protocol.WorkingSolutionVolume(tt.tubes)
			if tt.wantErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, vol, 1e-9)
		})
	}
}

func TestWorkingSolutionConcentration(t *testing.T) {
	tests := []struct {
		name         string
		criticalConc float64
		expected     float64
		wantErr      bool
	}{
		{
			name:         "multiplies by the MGIT dilution factor",
			criticalConc: 1.0,
			expected:     84,
		},
		{
			name:         "isoniazid critical concentration",
			criticalConc: 0.1,
			expected:     8.4,
		},
		{
			name:         "zero concentration",
			criticalConc: 0,
			expected:     0,
		},
		{
			name:         "negative concentration",
			criticalConc: -1,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conc, err := WorkingSolutionConcentration(tt.criticalConc)
			if tt.wantErr {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, conc, 1e-9)
		})
	}
}

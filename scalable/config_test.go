package scalable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{ErrorRate: 0.01}, false},
		{"explicit", Config{ErrorRate: 0.001, InitialCapacity: 1, Tightening: 0.5}, false},
		{"error rate zero", Config{ErrorRate: 0}, true},
		{"error rate one", Config{ErrorRate: 1}, true},
		{"error rate negative", Config{ErrorRate: -0.1}, true},
		{"error rate NaN", Config{ErrorRate: math.NaN()}, true},
		{"capacity negative", Config{ErrorRate: 0.01, InitialCapacity: -1}, true},
		{"tightening one", Config{ErrorRate: 0.01, Tightening: 1}, true},
		{"tightening negative", Config{ErrorRate: 0.01, Tightening: -0.5}, true},
		{"tightening above one", Config{ErrorRate: 0.01, Tightening: 1.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidArgument)

			_, err = New(tt.cfg)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	f, err := New(Config{ErrorRate: 0.02})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(0.02), f.Config())

	s := f.Stats()
	require.Equal(t, uint64(DefaultInitialCapacity), s.Layers[0].Capacity)
	require.InDelta(t, 0.02*(1-DefaultTightening), s.Layers[0].ErrorRate, 1e-15)
}

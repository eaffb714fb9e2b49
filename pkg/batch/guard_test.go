package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_CheckSafe(t *testing.T) {
	g := NewGuard(0.5)

	tests := []struct {
		name     string
		current  int
		proposed int
		blocked  bool
	}{
		{"small fraction allowed", 10, 1, false},
		{"half is allowed, boundary is inclusive", 10, 5, false},
		{"above half is blocked", 10, 8, true},
		{"just above half is blocked", 10, 6, true},
		{"everything is blocked", 10, 10, true},
		{"nothing proposed is always safe", 10, 0, false},
		{"no existing records blocks any delete", 0, 3, true},
		{"zero proposed with zero existing is safe", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.CheckSafe(tt.current, tt.proposed)
			if tt.blocked {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMassDeletionBlocked)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewGuard_DefaultRatio(t *testing.T) {
	assert.InDelta(t, DefaultMassDeletionRatio, NewGuard(0).MaxRatio, 0.001)
	assert.InDelta(t, DefaultMassDeletionRatio, NewGuard(-1).MaxRatio, 0.001)
	assert.InDelta(t, 0.9, NewGuard(0.9).MaxRatio, 0.001)
}

func TestGuard_CustomRatio(t *testing.T) {
	g := NewGuard(0.25)
	assert.NoError(t, g.CheckSafe(100, 25))
	assert.Error(t, g.CheckSafe(100, 26))
}

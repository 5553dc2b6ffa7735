package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForLifetimePoints(t *testing.T) {
	tests := []struct {
		lifetimePoints int
		want           LoyaltyTier
	}{
		{0, TierBronze},
		{999, TierBronze},
		{1000, TierSilver},
		{4999, TierSilver},
		{5000, TierGold},
		{14999, TierGold},
		{15000, TierPlatinum},
		{100000, TierPlatinum},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierForLifetimePoints(tt.lifetimePoints),
			"lifetime points %d", tt.lifetimePoints)
	}
}

func TestLoyaltyTier_PointsMultiplier(t *testing.T) {
	assert.InDelta(t, 1.0, TierBronze.PointsMultiplier(), 1e-9)
	assert.InDelta(t, 1.2, TierSilver.PointsMultiplier(), 1e-9)
	assert.InDelta(t, 1.5, TierGold.PointsMultiplier(), 1e-9)
	assert.InDelta(t, 2.0, TierPlatinum.PointsMultiplier(), 1e-9)
}

func TestLoyaltyTier_FreeShipping(t *testing.T) {
	assert.False(t, TierBronze.FreeShipping())
	assert.False(t, TierSilver.FreeShipping())
	assert.True(t, TierGold.FreeShipping())
	assert.True(t, TierPlatinum.FreeShipping())
}

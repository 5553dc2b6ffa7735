package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyTier is a customer's loyalty level, derived from lifetime points.
type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "bronze"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierPlatinum LoyaltyTier = "platinum"
)

// Lifetime point thresholds per tier.
const (
	tierSilverThreshold   = 1000
	tierGoldThreshold     = 5000
	tierPlatinumThreshold = 15000
)

// TierForLifetimePoints derives the tier a lifetime point balance earns.
func TierForLifetimePoints(lifetimePoints int) LoyaltyTier {
	switch {
	case lifetimePoints >= tierPlatinumThreshold:
		return TierPlatinum
	case lifetimePoints >= tierGoldThreshold:
		return TierGold
	case lifetimePoints >= tierSilverThreshold:
		return TierSilver
	}

	return TierBronze
}

// PointsMultiplier returns the earn-rate multiplier the tier grants.
func (t LoyaltyTier) PointsMultiplier() float64 {
	switch t {
	case TierSilver:
		return 1.2
	case TierGold:
		return 1.5
	case TierPlatinum:
		return 2
	}

	return 1
}

// FreeShipping reports whether the tier waives the shipping fee.
func (t LoyaltyTier) FreeShipping() bool {
	return t == TierGold || t == TierPlatinum
}

// LoyaltyAccount tracks a user's redeemable and lifetime points.
type LoyaltyAccount struct {
	ID             uuid.UUID   `json:"id"`
	UserID         uuid.UUID   `json:"user_id"`
	TotalPoints    int         `json:"total_points"`
	LifetimePoints int         `json:"lifetime_points"`
	Tier           LoyaltyTier `json:"tier"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

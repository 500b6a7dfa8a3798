package economy

import (
	"time"

	"nilk-backend/models"
)

// FusionTier identifies the output tier of a cow fusion
type FusionTier string

const (
	TierCosmic         FusionTier = "cosmic"
	TierGalacticMooMoo FusionTier = "galactic_moo_moo"
)

const (
	// FlaskDuration is the active window of any flask buff
	FlaskDuration = time.Hour

	// YieldBoostBonus is the extra $NILK fraction on processing
	YieldBoostBonus = 0.10
	// FusionFluxDiscount is the fraction shaved off fusion fees
	FusionFluxDiscount = 0.20
	// ChronoRateMultiplier scales the passive generation rate
	ChronoRateMultiplier = 1.5

	secondsPerDay = 86400
)

// FlaskCost is the crafting cost of one flask
type FlaskCost struct {
	RawNilk float64
	Nilk    float64
}

// FlaskCosts is the fixed crafting cost table
var FlaskCosts = map[models.FlaskType]FlaskCost{
	models.FlaskYieldBoost:       {RawNilk: 500, Nilk: 250},
	models.FlaskFusionFlux:       {RawNilk: 1200, Nilk: 600},
	models.FlaskChronoCondensate: {RawNilk: 2000, Nilk: 1000},
}

// FusionFees is the fixed $NILK fee per fusion output tier
var FusionFees = map[FusionTier]float64{
	TierCosmic:         75000,
	TierGalacticMooMoo: 350000,
}

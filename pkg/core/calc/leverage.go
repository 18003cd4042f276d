package calc

// =============================================================================
// LEVERAGE ADJUSTMENTS
// =============================================================================

// Debt risk premium policy. The model treats 50% leverage as the point
// where bankruptcy risk starts to bite and prices it with a fixed quadratic
// coefficient. The constants are a stated simplifying assumption, not a
// market calibration; their only contract is internal consistency across
// the simulated curve.
const (
	// DebtPremiumThreshold is the debt weight at which the risk premium
	// starts to accrue.
	DebtPremiumThreshold = 0.5

	// DebtPremiumCoefficient scales the quadratic premium above the
	// threshold.
	DebtPremiumCoefficient = 0.5
)

// ReleverBeta adjusts an unlevered beta for a capital structure using the
// Hamada equation.
//
// FORMULA: β_L = β_U × [1 + (1 - T) × (D/E)]
//
// Adding debt raises equity risk, so β_L ≥ β_U for any positive D/E.
// A zero-equity structure has no meaningful D/E; beta is returned
// unchanged rather than dividing by zero.
func ReleverBeta(betaUnlevered, debt, equity, taxRate float64) float64 {
	if equity == 0 {
		return betaUnlevered
	}
	return betaUnlevered * (1 + (1-taxRate)*(debt/equity))
}

// DeleverBeta strips financing risk out of an observed (levered) beta,
// isolating business risk. Algebraic inverse of ReleverBeta.
//
// FORMULA: β_U = β_L / [1 + (1 - T) × (D/E)]
//
// The same zero-equity guard applies: the observed beta passes through
// unchanged.
func DeleverBeta(betaLevered, debt, equity, taxRate float64) float64 {
	if equity == 0 {
		return betaLevered
	}
	return betaLevered / (1 + (1-taxRate)*(debt/equity))
}

// CostOfDebtAtLeverage prices debt at a hypothetical leverage ratio.
//
// FORMULA: r_d(w) = base                          for w < 0.5
//          r_d(w) = base + (w - 0.5)² × 0.5       for w ≥ 0.5
//
// Flat below the threshold, convex above it — a bankruptcy-risk proxy.
// Continuous at w = 0.5 (the premium is zero there) and strictly
// increasing beyond it.
func CostOfDebtAtLeverage(debtWeight, baseRate float64) float64 {
	if debtWeight < DebtPremiumThreshold {
		return baseRate
	}
	excess := debtWeight - DebtPremiumThreshold
	return baseRate + excess*excess*DebtPremiumCoefficient
}

// Package calc provides deterministic financial calculations for
// capital-structure analysis: CAPM pricing, Hamada de-/re-levering,
// leverage-sensitive cost of debt, and the WACC blend.
//
// Every function is a pure function of its scalar arguments. Degenerate
// inputs (zero total capital, zero equity) produce defined numeric
// fallbacks instead of errors: the domain treats them as
// degenerate-but-meaningful states, not failures.
package calc

// =============================================================================
// COST OF CAPITAL
// =============================================================================

// CostOfEquityCAPM calculates required return on equity using CAPM.
//
// FORMULA: r_e = r_f + β × (r_m - r_f)
//
// Where:
//   - r_f = Risk-free rate
//   - β = Equity beta (market sensitivity)
//   - r_m = Expected market return
//
// A negative market risk premium (r_m < r_f) is accepted and simply yields
// a cost of equity below the risk-free rate.
func CostOfEquityCAPM(riskFreeRate, beta, marketReturn float64) float64 {
	return riskFreeRate + beta*(marketReturn-riskFreeRate)
}

// WACC calculates Weighted Average Cost of Capital from currency amounts.
//
// FORMULA: WACC = E/V × r_e + D/V × r_d × (1 - T)
//
// Where:
//   - D, E = Debt and equity in currency; V = D + E
//   - r_d = Pre-tax cost of debt
//   - r_e = Cost of equity (typically from CAPM)
//   - T = Corporate tax rate
//
// This is the single place the after-tax debt shield is applied. Zero total
// capital returns 0 rather than dividing by zero; callers must treat that
// as a degenerate-but-valid result, not an error.
func WACC(debt, equity, costOfDebt, costOfEquity, taxRate float64) float64 {
	total := debt + equity
	if total == 0 {
		return 0
	}
	weightDebt := debt / total
	weightEquity := equity / total
	return weightEquity*costOfEquity + weightDebt*costOfDebt*(1-taxRate)
}

package capstruct

import (
	"gonum.org/v1/gonum/floats"

	"wacc_lab/pkg/core/calc"
)

// Sweep policy constants.
const (
	// DefaultCurveSamples is the grid resolution used when the caller does
	// not ask for a specific one.
	DefaultCurveSamples = 50

	// maxSimulatedDebtWeight stops the sweep short of a pure-debt
	// structure, which is undefined for equity-weighted formulas.
	maxSimulatedDebtWeight = 0.95

	// minEquityWeight is the floor below which the simulated D/E ratio is
	// clamped instead of dividing by near-zero equity.
	minEquityWeight = 0.01

	// maxDebtEquityRatio is the nominal D/E substituted at the equity
	// floor. A numerical-stability policy, not a calibrated value.
	maxDebtEquityRatio = 99.0
)

// SimulateCurve sweeps evenly spaced debt weights over [0, 0.95] and prices
// each hypothetical structure, producing an ordered curve of
// (debtWeight, costOfEquity, costOfDebt, WACC) samples.
//
// The current beta is delevered exactly once, from the structure as the
// caller reported it; each sample then relevers that unlevered beta at the
// sampled mix. The sweep never re-delevers an already relevered beta —
// that would compound the adjustment.
//
// Output is ascending in debt weight and fully deterministic: identical
// inputs reproduce an identical sequence. The current structure is only
// read, never mutated.
//
// A non-positive sample count falls back to DefaultCurveSamples. A request
// for exactly one sample degenerates to the single zero-leverage point —
// one sample cannot span both ends of the interval.
func SimulateCurve(current CapitalStructure, risk RiskParameters, taxRate, baseCostOfDebt float64, samples int) []LeveragePoint {
	if samples <= 0 {
		samples = DefaultCurveSamples
	}

	betaUnlevered := calc.DeleverBeta(risk.Beta, current.Debt, current.Equity, taxRate)

	weights := make([]float64, samples)
	if samples > 1 {
		floats.Span(weights, 0, maxSimulatedDebtWeight)
	}

	curve := make([]LeveragePoint, 0, samples)
	for _, debtWeight := range weights {
		equityWeight := 1 - debtWeight

		// Hamada needs a D/E ratio; near-zero equity gets the clamped
		// nominal ratio to keep relevering stable.
		debt, equity := debtWeight, equityWeight
		if equityWeight <= minEquityWeight {
			debt, equity = maxDebtEquityRatio, 1
		}

		betaAt := calc.ReleverBeta(betaUnlevered, debt, equity, taxRate)
		costOfEquity := calc.CostOfEquityCAPM(risk.RiskFreeRate, betaAt, risk.MarketReturn)
		costOfDebt := calc.CostOfDebtAtLeverage(debtWeight, baseCostOfDebt)

		curve = append(curve, LeveragePoint{
			DebtWeight:   debtWeight,
			CostOfEquity: costOfEquity,
			CostOfDebt:   costOfDebt,
			WACC:         calc.WACC(debtWeight, equityWeight, costOfDebt, costOfEquity, taxRate),
		})
	}
	return curve
}

// Package capstruct simulates how WACC and the cost of equity respond to
// changes in a firm's debt/equity mix, and classifies value creation from
// the ROIC-vs-WACC spread. Everything here is a pure function of immutable
// value records; there is no shared state and nothing outlives its call.
package capstruct

import "wacc_lab/pkg/core/calc"

// CapitalStructure is a firm's financing mix in currency amounts.
type CapitalStructure struct {
	Debt   float64 `json:"debt" yaml:"debt"`
	Equity float64 `json:"equity" yaml:"equity"`
}

// Total returns total invested capital (V = D + E).
func (c CapitalStructure) Total() float64 {
	return c.Debt + c.Equity
}

// DebtWeight returns debt as a fraction of total capital, 0 for an empty
// structure.
func (c CapitalStructure) DebtWeight() float64 {
	if c.Total() == 0 {
		return 0
	}
	return c.Debt / c.Total()
}

// EquityWeight returns equity as a fraction of total capital, 0 for an
// empty structure.
func (c CapitalStructure) EquityWeight() float64 {
	if c.Total() == 0 {
		return 0
	}
	return c.Equity / c.Total()
}

// RiskParameters are the CAPM inputs used to price equity.
type RiskParameters struct {
	RiskFreeRate float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	Beta         float64 `json:"beta" yaml:"beta"`
	MarketReturn float64 `json:"market_return" yaml:"market_return"`
}

// CostInputs are the resolved per-scenario rates the WACC blend consumes.
type CostInputs struct {
	CostOfDebt   float64 `json:"cost_of_debt"`
	CostOfEquity float64 `json:"cost_of_equity"`
	TaxRate      float64 `json:"tax_rate"`
}

// CurrentWACC evaluates WACC for a concrete structure and cost set.
func CurrentWACC(structure CapitalStructure, costs CostInputs) float64 {
	return calc.WACC(structure.Debt, structure.Equity, costs.CostOfDebt, costs.CostOfEquity, costs.TaxRate)
}

// LeveragePoint is one sample of the simulated capital-structure curve.
type LeveragePoint struct {
	DebtWeight   float64 `json:"debt_weight"`
	CostOfEquity float64 `json:"cost_of_equity"`
	CostOfDebt   float64 `json:"cost_of_debt"`
	WACC         float64 `json:"wacc"`
}

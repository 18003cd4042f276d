package capstruct

import (
	"github.com/google/uuid"

	"wacc_lab/pkg/core/calc"
)

// CAPM fallbacks for manual-rate scenarios. The leverage sweep always
// reprices equity through CAPM, so a scenario that supplies a manual cost
// of equity still needs nominal risk parameters for the simulated curve.
const (
	fallbackRiskFree     = 0.04
	fallbackBeta         = 1.0
	fallbackMarketReturn = 0.10
)

// targetWACCRatio sets the headline improvement target reported next to
// the current WACC.
const targetWACCRatio = 0.9

// CAPMParams carries the CAPM leg of the equity-cost choice.
type CAPMParams struct {
	RiskFreeRate float64 `json:"risk_free_rate" yaml:"risk_free_rate"`
	Beta         float64 `json:"beta" yaml:"beta"`
	MarketReturn float64 `json:"market_return" yaml:"market_return"`
}

// ScenarioInput is the flat scalar contract with the presentation layer.
// Exactly one of CAPM or ManualCostOfEquity should be set; when both are
// present CAPM wins, and when neither is set the cost of equity is 0.
//
// Preconditions (enforced by the HTTP boundary, not here): Debt and Equity
// non-negative, TaxRate in [0, 1].
type ScenarioInput struct {
	Debt               float64     `json:"debt" yaml:"debt"`
	Equity             float64     `json:"equity" yaml:"equity"`
	TaxRate            float64     `json:"tax_rate" yaml:"tax_rate"`
	CostOfDebt         float64     `json:"cost_of_debt" yaml:"cost_of_debt"`
	ROIC               float64     `json:"roic" yaml:"roic"`
	CAPM               *CAPMParams `json:"capm,omitempty" yaml:"capm,omitempty"`
	ManualCostOfEquity *float64    `json:"manual_cost_of_equity,omitempty" yaml:"manual_cost_of_equity,omitempty"`
	CurveSamples       int         `json:"curve_samples,omitempty" yaml:"curve_samples,omitempty"`
}

// ScenarioResult is everything the presentation layer needs: headline
// rates, value diagnostic, and the simulated curve for charting.
type ScenarioResult struct {
	RunID              string          `json:"run_id"`
	CostOfEquity       float64         `json:"cost_of_equity"`
	WACC               float64         `json:"wacc"`
	TargetWACC         float64         `json:"target_wacc"`
	AfterTaxCostOfDebt float64         `json:"after_tax_cost_of_debt"`
	DebtWeight         float64         `json:"debt_weight"`
	EquityWeight       float64         `json:"equity_weight"`
	Diagnostic         Diagnostic      `json:"diagnostic"`
	Advice             string          `json:"advice"`
	CurrentPoint       LeveragePoint   `json:"current_point"`
	Curve              []LeveragePoint `json:"curve"`
}

// resolve collapses the CAPM/manual choice into a single cost of equity
// plus the risk parameters the sweep will reuse. Nothing below this point
// ever sees which option the caller picked.
func (in ScenarioInput) resolve() (costOfEquity float64, risk RiskParameters) {
	risk = RiskParameters{
		RiskFreeRate: fallbackRiskFree,
		Beta:         fallbackBeta,
		MarketReturn: fallbackMarketReturn,
	}
	if in.CAPM != nil {
		risk = RiskParameters(*in.CAPM)
		return calc.CostOfEquityCAPM(risk.RiskFreeRate, risk.Beta, risk.MarketReturn), risk
	}
	if in.ManualCostOfEquity != nil {
		return *in.ManualCostOfEquity, risk
	}
	return 0, risk
}

// Evaluate runs the full scenario: current WACC, value diagnostic, and the
// leverage sweep. Pure computation except for the generated run ID.
func Evaluate(in ScenarioInput) ScenarioResult {
	structure := CapitalStructure{Debt: in.Debt, Equity: in.Equity}
	costOfEquity, risk := in.resolve()

	costs := CostInputs{
		CostOfDebt:   in.CostOfDebt,
		CostOfEquity: costOfEquity,
		TaxRate:      in.TaxRate,
	}
	wacc := CurrentWACC(structure, costs)
	diag := Diagnose(in.ROIC, wacc, structure.Total())
	curve := SimulateCurve(structure, risk, in.TaxRate, in.CostOfDebt, in.CurveSamples)

	return ScenarioResult{
		RunID:              uuid.NewString(),
		CostOfEquity:       costOfEquity,
		WACC:               wacc,
		TargetWACC:         wacc * targetWACCRatio,
		AfterTaxCostOfDebt: in.CostOfDebt * (1 - in.TaxRate),
		DebtWeight:         structure.DebtWeight(),
		EquityWeight:       structure.EquityWeight(),
		Diagnostic:         diag,
		Advice:             diag.Classification.Advice(),
		CurrentPoint: LeveragePoint{
			DebtWeight:   structure.DebtWeight(),
			CostOfEquity: costOfEquity,
			CostOfDebt:   in.CostOfDebt,
			WACC:         wacc,
		},
		Curve: curve,
	}
}

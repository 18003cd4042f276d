package capstruct

import (
	"math"
	"testing"

	"wacc_lab/pkg/core/calc"
)

var (
	testStructure = CapitalStructure{Debt: 500000, Equity: 1000000}
	testRisk      = RiskParameters{RiskFreeRate: 0.04, Beta: 1.1, MarketReturn: 0.10}
)

func TestSimulateCurveShape(t *testing.T) {
	curve := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 50)

	if len(curve) != 50 {
		t.Fatalf("Expected 50 samples, got %d", len(curve))
	}
	if curve[0].DebtWeight != 0 {
		t.Errorf("Expected first sample at debt weight 0, got %f", curve[0].DebtWeight)
	}
	if math.Abs(curve[len(curve)-1].DebtWeight-0.95) > 1e-12 {
		t.Errorf("Expected last sample at debt weight 0.95, got %f", curve[len(curve)-1].DebtWeight)
	}

	// Strictly ascending in debt weight.
	for i := 1; i < len(curve); i++ {
		if curve[i].DebtWeight <= curve[i-1].DebtWeight {
			t.Errorf("Curve not ascending at index %d: %f <= %f", i, curve[i].DebtWeight, curve[i-1].DebtWeight)
		}
	}
}

func TestSimulateCurveDeterministic(t *testing.T) {
	a := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 50)
	b := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 50)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Curves diverge at index %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSimulateCurveAllEquityPoint(t *testing.T) {
	// At debt weight 0 the relevered beta equals the unlevered beta and
	// WACC equals the cost of equity.
	curve := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 50)
	p := curve[0]

	betaU := calc.DeleverBeta(testRisk.Beta, testStructure.Debt, testStructure.Equity, 0.34)
	wantKe := calc.CostOfEquityCAPM(testRisk.RiskFreeRate, betaU, testRisk.MarketReturn)
	if math.Abs(p.CostOfEquity-wantKe) > 1e-9 {
		t.Errorf("Expected Ke %f at zero leverage, got %f", wantKe, p.CostOfEquity)
	}
	if math.Abs(p.WACC-p.CostOfEquity) > 1e-9 {
		t.Errorf("Expected WACC = Ke at zero leverage, got WACC %f Ke %f", p.WACC, p.CostOfEquity)
	}
	if p.CostOfDebt != 0.08 {
		t.Errorf("Expected base cost of debt at zero leverage, got %f", p.CostOfDebt)
	}
}

func TestSimulateCurveMatchesDirectWACCAtCurrentRatio(t *testing.T) {
	// The sample nearest the firm's actual debt ratio should approximate
	// the WACC computed directly from the current inputs, within the
	// resolution of the sampling grid.
	taxRate := 0.34
	curve := SimulateCurve(testStructure, testRisk, taxRate, 0.08, 50)

	ke := calc.CostOfEquityCAPM(testRisk.RiskFreeRate, testRisk.Beta, testRisk.MarketReturn)
	direct := calc.WACC(testStructure.Debt, testStructure.Equity, 0.08, ke, taxRate)

	currentWeight := testStructure.DebtWeight() // 1/3
	nearest := curve[0]
	for _, p := range curve {
		if math.Abs(p.DebtWeight-currentWeight) < math.Abs(nearest.DebtWeight-currentWeight) {
			nearest = p
		}
	}

	if math.Abs(nearest.WACC-direct) > 0.002 {
		t.Errorf("Curve WACC %f at w=%f too far from direct WACC %f", nearest.WACC, nearest.DebtWeight, direct)
	}
}

func TestSimulateCurveDebtPremiumKicksIn(t *testing.T) {
	curve := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 50)
	for _, p := range curve {
		if p.DebtWeight <= 0.5 && p.CostOfDebt != 0.08 {
			t.Errorf("Unexpected debt premium at w=%f: %f", p.DebtWeight, p.CostOfDebt)
		}
		if p.DebtWeight > 0.5 && p.CostOfDebt <= 0.08 {
			t.Errorf("Missing debt premium at w=%f: %f", p.DebtWeight, p.CostOfDebt)
		}
	}
}

func TestSimulateCurveSampleCountFallbacks(t *testing.T) {
	if got := len(SimulateCurve(testStructure, testRisk, 0.34, 0.08, 0)); got != DefaultCurveSamples {
		t.Errorf("Expected default sample count for 0, got %d", got)
	}
	if got := len(SimulateCurve(testStructure, testRisk, 0.34, 0.08, -3)); got != DefaultCurveSamples {
		t.Errorf("Expected default sample count for negative, got %d", got)
	}

	// A single sample cannot span the interval; it degenerates to the
	// zero-leverage point, as documented on SimulateCurve.
	single := SimulateCurve(testStructure, testRisk, 0.34, 0.08, 1)
	if len(single) != 1 || single[0].DebtWeight != 0 {
		t.Errorf("Expected one sample at weight 0, got %+v", single)
	}
}

func TestSimulateCurveZeroEquityStructure(t *testing.T) {
	// A degenerate current structure passes the observed beta through as
	// the unlevered beta; the sweep must still produce a full curve.
	curve := SimulateCurve(CapitalStructure{Debt: 500000, Equity: 0}, testRisk, 0.34, 0.08, 50)
	if len(curve) != 50 {
		t.Fatalf("Expected 50 samples, got %d", len(curve))
	}
	// With betaU == observed beta, the zero-leverage Ke prices that beta
	// directly.
	wantKe := calc.CostOfEquityCAPM(testRisk.RiskFreeRate, testRisk.Beta, testRisk.MarketReturn)
	if math.Abs(curve[0].CostOfEquity-wantKe) > 1e-9 {
		t.Errorf("Expected Ke %f, got %f", wantKe, curve[0].CostOfEquity)
	}
}

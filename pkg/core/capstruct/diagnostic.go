package capstruct

// Classification is the value-creation band a firm falls into when its
// ROIC is compared against its WACC.
type Classification string

const (
	ValueCreationStrong   Classification = "value_creation_strong"
	ValueCreationMarginal Classification = "value_creation_marginal"
	ValueDestruction      Classification = "value_destruction"
)

// strongSpreadThreshold separates comfortable value creation from marginal.
const strongSpreadThreshold = 0.02

// Diagnostic is the result of comparing ROIC against WACC.
type Diagnostic struct {
	Spread         float64        `json:"spread"`
	EVA            float64        `json:"eva"`
	Classification Classification `json:"classification"`
}

// Diagnose computes the economic spread (ROIC - WACC), Economic Value
// Added, and the classification band. Bands are evaluated in order:
// a spread of exactly 0.02 is Marginal (the Strong band is strict) and a
// spread of exactly 0 is Destruction (the Marginal band is strict).
// No smoothing or hysteresis; the classification is a pure function of
// the instantaneous spread.
func Diagnose(roic, wacc, totalCapital float64) Diagnostic {
	spread := roic - wacc
	diag := Diagnostic{
		Spread: spread,
		EVA:    totalCapital * spread,
	}
	switch {
	case spread > strongSpreadThreshold:
		diag.Classification = ValueCreationStrong
	case spread > 0:
		diag.Classification = ValueCreationMarginal
	default:
		diag.Classification = ValueDestruction
	}
	return diag
}

// Advice returns the recommendation text for a classification band.
func (c Classification) Advice() string {
	switch c {
	case ValueCreationStrong:
		return "Returns clear the cost of capital with room to spare. Accelerate investment in similar projects; there is slack to take on more debt if expansion requires it."
	case ValueCreationMarginal:
		return "Value is being created, but the margin is thin. Focus on operating efficiency to lift ROIC, or renegotiate debt to bring its cost down."
	default:
		return "Value destruction: each unit of capital invested costs more than it returns. Pause new investment; consider selling unproductive assets or paying down expensive debt."
	}
}

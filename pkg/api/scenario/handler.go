// Package scenario exposes capital-structure scenario evaluation over HTTP.
package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"wacc_lab/pkg/core/capstruct"
)

// Handler holds dependencies for the scenario endpoints.
type Handler struct {
	defaults capstruct.ScenarioInput
	samples  int
	log      zerolog.Logger
}

// NewHandler creates a scenario handler. defaults prefill the form-facing
// defaults endpoint; samples is the curve resolution applied when a request
// does not specify one.
func NewHandler(defaults capstruct.ScenarioInput, samples int, log zerolog.Logger) *Handler {
	if samples <= 0 {
		samples = capstruct.DefaultCurveSamples
	}
	return &Handler{
		defaults: defaults,
		samples:  samples,
		log:      log.With().Str("component", "scenario").Logger(),
	}
}

// HandleEvaluate runs a full scenario: current WACC, diagnostic, and the
// leverage curve.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	// CORS for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var in capstruct.ScenarioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate(in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if in.CurveSamples <= 0 {
		in.CurveSamples = h.samples
	}

	res := capstruct.Evaluate(in)
	h.log.Info().
		Str("run_id", res.RunID).
		Float64("wacc", res.WACC).
		Float64("spread", res.Diagnostic.Spread).
		Str("classification", string(res.Diagnostic.Classification)).
		Msg("scenario evaluated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleDefaults serves the prefill values for a fresh scenario form.
func (h *Handler) HandleDefaults(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.defaults)
}

// HandleHealthz is a liveness probe.
func (h *Handler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// validate enforces the boundary preconditions. The engine itself never
// rejects inputs (degenerate structures get numeric fallbacks), so this is
// the one place nonsense is turned away.
func validate(in capstruct.ScenarioInput) error {
	if in.Debt < 0 || in.Equity < 0 {
		return fmt.Errorf("debt and equity must be non-negative")
	}
	if in.TaxRate < 0 || in.TaxRate > 1 {
		return fmt.Errorf("tax rate must lie in [0, 1]")
	}
	return nil
}

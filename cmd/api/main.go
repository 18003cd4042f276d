package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v2"

	"wacc_lab/pkg/api/scenario"
	"wacc_lab/pkg/core/capstruct"
)

// Config mirrors config/defaults.yaml.
type Config struct {
	ListenAddr      string                  `yaml:"listen_addr"`
	CurveSamples    int                     `yaml:"curve_samples"`
	DefaultScenario capstruct.ScenarioInput `yaml:"default_scenario"`
}

func defaultConfig() Config {
	return Config{
		ListenAddr:   ":8080",
		CurveSamples: capstruct.DefaultCurveSamples,
		DefaultScenario: capstruct.ScenarioInput{
			Debt:       500000,
			Equity:     1000000,
			TaxRate:    0.34,
			CostOfDebt: 0.08,
			ROIC:       0.12,
			CAPM:       &capstruct.CAPMParams{RiskFreeRate: 0.04, Beta: 1.1, MarketReturn: 0.10},
		},
	}
}

func main() {
	// Load environment variables
	godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Str("component", "api").Logger()

	cfg := loadConfig(log)

	handler := scenario.NewHandler(cfg.DefaultScenario, cfg.CurveSamples, log)
	http.HandleFunc("/api/scenario/evaluate", handler.HandleEvaluate)
	http.HandleFunc("/api/scenario/defaults", handler.HandleDefaults)
	http.HandleFunc("/api/healthz", handler.HandleHealthz)

	log.Info().Str("addr", cfg.ListenAddr).Msg("API server starting")
	log.Info().Msg("  - POST /api/scenario/evaluate")
	log.Info().Msg("  - GET  /api/scenario/defaults")
	log.Info().Msg("  - GET  /api/healthz")

	if err := http.ListenAndServe(cfg.ListenAddr, nil); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

// loadConfig reads config/defaults.yaml (or $WACC_CONFIG), falling back to
// compiled defaults when the file is missing or malformed.
func loadConfig(log zerolog.Logger) Config {
	cfg := defaultConfig()

	path := os.Getenv("WACC_CONFIG")
	if path == "" {
		path = "config/defaults.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("config file not found, using compiled defaults")
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config parse failed, using compiled defaults")
		return defaultConfig()
	}
	return cfg
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"wacc_lab/pkg/core/capstruct"
)

func main() {
	mode := flag.String("mode", "wacc", "Mode: wacc, curve or diagnose")
	dataStr := flag.String("data", "", "JSON scenario payload")
	flag.Parse()

	if *dataStr == "" {
		fmt.Println("Error: No data provided")
		os.Exit(1)
	}

	var in capstruct.ScenarioInput
	if err := json.Unmarshal([]byte(*dataStr), &in); err != nil {
		fmt.Printf("Error unmarshaling data: %v\n", err)
		os.Exit(1)
	}

	res := capstruct.Evaluate(in)

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	switch *mode {
	case "wacc":
		out.Encode(map[string]float64{
			"wacc":                   res.WACC,
			"cost_of_equity":         res.CostOfEquity,
			"after_tax_cost_of_debt": res.AfterTaxCostOfDebt,
		})
	case "curve":
		out.Encode(res.Curve)
	case "diagnose":
		out.Encode(struct {
			capstruct.Diagnostic
			Advice string `json:"advice"`
		}{res.Diagnostic, res.Advice})
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

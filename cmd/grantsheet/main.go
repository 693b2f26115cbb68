package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/joho/godotenv"

	"grant_valuation/pkg/core/config"
	"grant_valuation/pkg/core/grant"
	"grant_valuation/pkg/core/report"
)

func main() {
	// Load environment variables; a missing .env just means plain
	// environment variables apply.
	godotenv.Load()

	configPath := flag.String("config", os.Getenv("GRANTSHEET_CONFIG"), "YAML config file (defaults apply when empty)")
	scenarioPath := flag.String("scenario", os.Getenv("GRANTSHEET_SCENARIO"), "scenario override file (JSON or HJSON)")
	format := flag.String("format", envOr("GRANTSHEET_FORMAT", "markdown"), "output format: markdown or html")
	growth := flag.Float64("growth", math.NaN(), "override growth rate (fraction, e.g. 0.20)")
	commonRate := flag.Float64("common-rate", math.NaN(), "override common share redemption rate")
	optionRate := flag.Float64("option-rate", math.NaN(), "override option redemption rate")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		cfg = loaded
	}

	if *scenarioPath != "" {
		scenario, err := config.LoadScenario(*scenarioPath)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		scenario.Apply(&cfg)
	}

	// Flag overrides win over scenario, scenario over config.
	if !math.IsNaN(*growth) {
		cfg.GrowthRate = *growth
	}
	if !math.IsNaN(*commonRate) {
		cfg.CommonRedemptionRate = *commonRate
	}
	if !math.IsNaN(*optionRate) {
		cfg.OptionRedemptionRate = *optionRate
	}

	rep, err := run(cfg)
	if err != nil {
		// Degraded re-run with fixed conservative rates before giving up.
		log.Printf("Warning: projection failed (%v); retrying with conservative parameters", err)
		fallback := cfg
		fallback.GrowthRate = grant.ConservativeGrowthRate
		fallback.CommonRedemptionRate = grant.ConservativeRedemptionRate
		fallback.OptionRedemptionRate = grant.ConservativeRedemptionRate

		rep, err = run(fallback)
		if err != nil {
			log.Fatalf("Error: fallback projection also failed: %v", err)
		}
		rep.Warnings = append(rep.Warnings,
			"configured run failed; results use conservative fixed rates (10% growth, 5% redemption)")
	}

	for _, w := range rep.Warnings {
		log.Printf("Warning: %s", w)
	}

	switch *format {
	case "markdown":
		out := report.RenderMarkdown(rep)
		if !report.ValidateMarkdown(out) {
			log.Fatal("Error: rendered report is not valid markdown")
		}
		fmt.Print(out)
	case "html":
		html, err := report.RenderHTML(rep)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Print(html)
	default:
		log.Fatalf("Error: unknown format %q (want markdown or html)", *format)
	}
}

// run validates the config, projects, and builds the report.
func run(cfg config.Config) (*report.Report, error) {
	params, warnings, err := cfg.Parameters()
	if err != nil {
		return nil, err
	}

	proj, err := grant.Project(params)
	if err != nil {
		return nil, err
	}

	return report.Build(proj, params, warnings, report.SweepSettings{
		RedemptionRates: cfg.Sensitivity.RedemptionRates,
		GrowthRates:     cfg.Sensitivity.GrowthRates,
		SampleYears:     cfg.Sensitivity.SampleYears,
	})
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package framework

import (
	"math"
	"testing"
)

func TestVPCDifferentiation(t *testing.T) {
	result := VPC{}.Calculate(Inputs{"cost": 50.0, "price": 100.0, "value": 150.0})

	checks := map[string]float64{
		"margin":         50,
		"margin_percent": 50,
		"value_premium":  50,
	}
	for metric, expected := range checks {
		if got := result.Scores[metric]; math.Abs(got-expected) > 1e-9 {
			t.Fatalf("%s: expected %f got %f", metric, expected, got)
		}
	}
	if strategy := result.AdditionalData["strategy"]; strategy != "Differentiation" {
		t.Fatalf("expected Differentiation got %v", strategy)
	}
	if result.OverallScore != nil {
		t.Fatalf("expected no overall score got %v", *result.OverallScore)
	}
	if result.Recommendations[0] != "Current strategy: Differentiation" {
		t.Fatalf("unexpected recommendation %q", result.Recommendations[0])
	}
}

func TestVPCStrategyBranches(t *testing.T) {
	tests := []struct {
		name     string
		cost     float64
		price    float64
		value    float64
		expected string
	}{
		{"differentiation", 50, 100, 150, "Differentiation"},
		{"loss leader", 100, 80, 90, "Loss Leader"},
		{"cost leadership", 95, 100, 90, "Cost Leadership"},
		{"balanced", 50, 100, 90, "Balanced"},
		// value above price but no positive margin falls through to loss leader
		{"negative margin premium", 120, 100, 150, "Loss Leader"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := VPC{}.Calculate(Inputs{"cost": tc.cost, "price": tc.price, "value": tc.value})
			if strategy := result.AdditionalData["strategy"]; strategy != tc.expected {
				t.Fatalf("expected %s got %v", tc.expected, strategy)
			}
		})
	}
}

func TestVPCValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    Inputs
		valid bool
	}{
		{"all positive", Inputs{"cost": 1.0, "price": 2.0, "value": 3.0}, true},
		{"zero cost", Inputs{"cost": 0.0, "price": 2.0, "value": 3.0}, false},
		{"negative price", Inputs{"cost": 1.0, "price": -2.0, "value": 3.0}, false},
		{"missing value", Inputs{"cost": 1.0, "price": 2.0}, false},
		{"string price", Inputs{"cost": 1.0, "price": "2", "value": 3.0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := (VPC{}).Validate(tc.in); got != tc.valid {
				t.Fatalf("expected valid=%v got %v", tc.valid, got)
			}
		})
	}
}

package framework

import (
	"math"
	"testing"
)

func cynefinInputs(clarity, causeEffect, alignment, timePressure, impact float64) Inputs {
	return Inputs{
		"clarity_level":           clarity,
		"cause_effect_visibility": causeEffect,
		"stakeholder_alignment":   alignment,
		"time_pressure":           timePressure,
		"failure_impact":          impact,
	}
}

func TestCynefinDomains(t *testing.T) {
	tests := []struct {
		name     string
		in       Inputs
		domain   string
		approach string
	}{
		{"obvious", cynefinInputs(9, 9, 9, 2, 2), "Obvious", "Sense – Categorize – Respond"},
		{"complicated", cynefinInputs(5, 5, 5, 5, 5), "Complicated", "Sense – Analyze – Respond"},
		{"complex", cynefinInputs(3, 3, 3, 5, 5), "Complex", "Probe – Sense – Respond"},
		{"chaotic", cynefinInputs(1, 1, 1, 9, 9), "Chaotic", "Act – Sense – Respond"},
		// low complexity with high risk is not obvious
		{"clear but risky", cynefinInputs(8, 8, 8, 9, 9), "Complicated", "Sense – Analyze – Respond"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Cynefin{}.Calculate(tc.in)
			if domain := result.AdditionalData["domain"]; domain != tc.domain {
				t.Fatalf("expected domain %s got %v", tc.domain, domain)
			}
			if approach := result.AdditionalData["approach"]; approach != tc.approach {
				t.Fatalf("expected approach %q got %v", tc.approach, approach)
			}
		})
	}
}

func TestCynefinScores(t *testing.T) {
	result := Cynefin{}.Calculate(cynefinInputs(9, 9, 9, 2, 2))

	if complexity := result.Scores["complexity"]; math.Abs(complexity-1) > 1e-9 {
		t.Fatalf("expected complexity 1 got %f", complexity)
	}
	if risk := result.Scores["risk"]; math.Abs(risk-2) > 1e-9 {
		t.Fatalf("expected risk 2 got %f", risk)
	}
	if overall := *result.OverallScore; math.Abs(overall-1.5) > 1e-9 {
		t.Fatalf("expected overall 1.5 got %f", overall)
	}
}

func TestCynefinValidate(t *testing.T) {
	if !(Cynefin{}).Validate(cynefinInputs(5, 5, 5, 5, 5)) {
		t.Fatal("expected valid inputs to pass")
	}

	missing := cynefinInputs(5, 5, 5, 5, 5)
	delete(missing, "failure_impact")
	if (Cynefin{}).Validate(missing) {
		t.Fatal("expected missing field to fail")
	}

	if (Cynefin{}).Validate(cynefinInputs(5, 5, 5, 5, 11)) {
		t.Fatal("expected out-of-range field to fail")
	}
}

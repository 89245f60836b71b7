package main

import (
	"testing"

	"decision-toolkit/internal/framework"
)

func TestInputsFromFlags(t *testing.T) {
	fields := []framework.Field{
		{Name: "cost", Type: framework.FieldNumber},
		{Name: "price", Type: framework.FieldNumber},
		{Name: "additional_notes", Type: framework.FieldText, Optional: true},
	}

	inputs, err := inputsFromFlags(fields, []string{"cost=50", "price=100", "additional_notes=from planning session"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if v, ok := inputs["cost"].(float64); !ok || v != 50 {
		t.Fatalf("expected cost 50 got %v", inputs["cost"])
	}
	if inputs["additional_notes"] != "from planning session" {
		t.Fatalf("expected notes preserved got %v", inputs["additional_notes"])
	}

	if _, err := inputsFromFlags(fields, []string{"cost"}); err == nil {
		t.Fatal("expected error for missing = separator")
	}
	if _, err := inputsFromFlags(fields, []string{"cost=abc"}); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	// empty values are skipped like the web boundary drops empty strings
	inputs, err = inputsFromFlags(fields, []string{"cost=50", "additional_notes="})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if _, present := inputs["additional_notes"]; present {
		t.Fatal("expected empty value to be dropped")
	}
}

func TestTitleWords(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"risk_adjusted_return", "Risk Adjusted Return"},
		{"margin", "Margin"},
		{"shared_values", "Shared Values"},
	}
	for _, tc := range tests {
		if got := titleWords(tc.in); got != tc.expected {
			t.Fatalf("titleWords(%q): expected %q got %q", tc.in, tc.expected, got)
		}
	}
}

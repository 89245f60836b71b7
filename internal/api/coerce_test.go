package api

import (
	"testing"

	"decision-toolkit/internal/framework"
)

func TestCoerceInputs(t *testing.T) {
	fields := []framework.Field{
		{Name: "cost", Type: framework.FieldNumber},
		{Name: "price", Type: framework.FieldNumber},
		{Name: "option_description", Type: framework.FieldText},
		{Name: "additional_notes", Type: framework.FieldText, Optional: true},
	}

	raw := map[string]any{
		"cost":               "50",
		"price":              100.0,
		"option_description": "expand north",
		"additional_notes":   "   ",
		"unknown":            "kept",
		"bad_number":         "fifty",
	}

	inputs := coerceInputs(raw, append(fields, framework.Field{Name: "bad_number", Type: framework.FieldNumber}))

	if v, ok := inputs["cost"].(float64); !ok || v != 50 {
		t.Fatalf("expected cost coerced to 50 got %v", inputs["cost"])
	}
	if v, ok := inputs["price"].(float64); !ok || v != 100 {
		t.Fatalf("expected native number preserved got %v", inputs["price"])
	}
	if _, present := inputs["additional_notes"]; present {
		t.Fatal("expected blank optional field to be dropped")
	}
	if inputs["unknown"] != "kept" {
		t.Fatalf("expected unknown key passed through got %v", inputs["unknown"])
	}
	// unparsable numbers stay strings so validation rejects them
	if _, isString := inputs["bad_number"].(string); !isString {
		t.Fatalf("expected bad_number left as string got %T", inputs["bad_number"])
	}
	if inputs["option_description"] != "expand north" {
		t.Fatalf("expected text preserved got %v", inputs["option_description"])
	}
}

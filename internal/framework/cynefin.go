package framework

import "fmt"

var cynefinFields = []string{
	"clarity_level", "cause_effect_visibility", "stakeholder_alignment",
	"time_pressure", "failure_impact",
}

// Cynefin places a problem in a sense-making domain from complexity and risk.
type Cynefin struct{}

func (Cynefin) Name() string { return "Cynefin Framework" }

func (Cynefin) RequiredInputs() []Field {
	return []Field{
		{Name: "clarity_level", Description: "Clarity of the problem definition (1-10 scale)", Type: FieldNumber},
		{Name: "cause_effect_visibility", Description: "Visibility of cause and effect relationships (1-10 scale)", Type: FieldNumber},
		{Name: "stakeholder_alignment", Description: "Stakeholder alignment on the issue (1-10 scale)", Type: FieldNumber},
		{Name: "time_pressure", Description: "Urgency or time pressure (1-10 scale)", Type: FieldNumber},
		{Name: "failure_impact", Description: "Potential impact of failure (1-10 scale)", Type: FieldNumber},
		{Name: "additional_notes", Description: "Additional context (optional)", Type: FieldText, Optional: true},
	}
}

func (Cynefin) Validate(in Inputs) bool {
	for _, field := range cynefinFields {
		if !numberInRange(in, field, 1, 10) {
			return false
		}
	}
	return true
}

func (c Cynefin) Calculate(in Inputs) *Result {
	clarity, _ := number(in, "clarity_level")
	causeEffect, _ := number(in, "cause_effect_visibility")
	alignment, _ := number(in, "stakeholder_alignment")
	timePressure, _ := number(in, "time_pressure")
	impact, _ := number(in, "failure_impact")

	complexity := ((10 - clarity) + (10 - causeEffect) + (10 - alignment)) / 3
	risk := (timePressure + impact) / 2
	overall := (complexity + risk) / 2

	var domain, approach string
	switch {
	case complexity < 3 && risk < 3:
		domain, approach = "Obvious", "Sense – Categorize – Respond"
	case complexity < 6:
		domain, approach = "Complicated", "Sense – Analyze – Respond"
	case complexity < 8:
		domain, approach = "Complex", "Probe – Sense – Respond"
	default:
		domain, approach = "Chaotic", "Act – Sense – Respond"
	}

	scores := map[string]float64{
		"complexity": complexity,
		"risk":       risk,
	}

	recommendations := []string{
		fmt.Sprintf("Domain: %s", domain),
		fmt.Sprintf("Recommended approach: %s", approach),
	}

	visualizations := map[string]any{
		"position": map[string]any{
			"complexity": complexity,
			"risk":       risk,
			"domain":     domain,
		},
	}

	return &Result{
		FrameworkName:   c.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		OverallScore:    f64ptr(overall),
		AdditionalData: map[string]any{
			"domain":   domain,
			"approach": approach,
			"notes":    notes(in),
		},
	}
}

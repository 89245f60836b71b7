package framework

import "fmt"

var inflectionScoreFields = []string{
	"market_signals", "competitive_shifts", "technology_impact",
	"business_model_threat", "internal_performance", "frontline_feedback",
}

// StrategicInflection detects strategic inflection points from threat and
// readiness signals.
type StrategicInflection struct{}

func (StrategicInflection) Name() string { return "Strategic Inflection Points Framework" }

func (StrategicInflection) RequiredInputs() []Field {
	return []Field{
		{Name: "market_signals", Description: "Market dynamics and early warning signs (1-10 scale)", Type: FieldNumber},
		{Name: "competitive_shifts", Description: "Changes in competitive landscape (1-10 scale)", Type: FieldNumber},
		{Name: "technology_impact", Description: "New technology adoption impact (1-10 scale)", Type: FieldNumber},
		{Name: "business_model_threat", Description: "Business model disruption threat (1-10 scale)", Type: FieldNumber},
		{Name: "internal_performance", Description: "Internal performance metrics (1-10 scale)", Type: FieldNumber},
		{Name: "frontline_feedback", Description: "Frontline employee insights (1-10 scale)", Type: FieldNumber},
		{Name: "signal_description", Description: "Description of key signals observed", Type: FieldText},
		{Name: "additional_notes", Description: "Additional context (optional)", Type: FieldText, Optional: true},
	}
}

func (StrategicInflection) Validate(in Inputs) bool {
	for _, field := range inflectionScoreFields {
		if !numberInRange(in, field, 1, 10) {
			return false
		}
	}
	_, ok := text(in, "signal_description")
	return ok
}

func (s StrategicInflection) Calculate(in Inputs) *Result {
	scores := make(map[string]float64, len(inflectionScoreFields))
	values := make([]float64, 0, len(inflectionScoreFields))
	labels := make([]string, 0, len(inflectionScoreFields))
	for _, field := range inflectionScoreFields {
		v, _ := number(in, field)
		scores[field] = v
		values = append(values, v)
		labels = append(labels, titleLabel(field))
	}

	threat := mean(scores["market_signals"], scores["competitive_shifts"],
		scores["technology_impact"], scores["business_model_threat"])
	readiness := mean(scores["internal_performance"], scores["frontline_feedback"])
	overallRisk := clamp(threat-readiness+5, 1, 10)

	var decision, riskLevel string
	switch {
	case overallRisk >= 7:
		decision, riskLevel = "Transform", "High"
	case overallRisk >= 5:
		decision, riskLevel = "Prepare", "Medium"
	default:
		decision, riskLevel = "Defend", "Low"
	}

	recommendations := []string{
		fmt.Sprintf("Recommended action: %s", decision),
		fmt.Sprintf("Inflection risk level: %s", riskLevel),
		fmt.Sprintf("Threat score: %.1f/10", threat),
		fmt.Sprintf("Readiness score: %.1f/10", readiness),
	}
	switch {
	case overallRisk >= 7:
		recommendations = append(recommendations, "Immediate strategic transformation required")
	case overallRisk >= 5:
		recommendations = append(recommendations, "Prepare for potential transformation")
	default:
		recommendations = append(recommendations, "Continue current strategy with monitoring")
	}

	visualizations := map[string]any{
		"risk_matrix": map[string]any{
			"threat_score":    threat,
			"readiness_score": readiness,
			"overall_risk":    overallRisk,
		},
		"radar_chart": map[string]any{
			"labels": labels,
			"values": values,
		},
	}

	signal, _ := text(in, "signal_description")

	return &Result{
		FrameworkName:   s.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		OverallScore:    f64ptr(overallRisk),
		AdditionalData: map[string]any{
			"decision":           decision,
			"risk_level":         riskLevel,
			"threat_score":       threat,
			"readiness_score":    readiness,
			"signal_description": signal,
			"notes":              notes(in),
		},
	}
}

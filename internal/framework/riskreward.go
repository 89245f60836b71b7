package framework

import "fmt"

// RiskReward positions a strategic option on the risk-reward matrix.
type RiskReward struct{}

func (RiskReward) Name() string { return "Risk-Reward Framework" }

func (RiskReward) RequiredInputs() []Field {
	return []Field{
		{Name: "risk_level", Description: "Risk assessment level (1-10 scale, 1=low risk, 10=high risk)", Type: FieldNumber},
		{Name: "reward_potential", Description: "Reward potential (1-10 scale, 1=low reward, 10=high reward)", Type: FieldNumber},
		{Name: "resource_requirements", Description: "Resource requirements (1-10 scale)", Type: FieldNumber},
		{Name: "success_probability", Description: "Success probability (0-100%)", Type: FieldNumber},
		{Name: "roi_projection", Description: "ROI projection percentage", Type: FieldNumber},
		{Name: "time_horizon", Description: "Time horizon in months", Type: FieldNumber},
		{Name: "option_description", Description: "Description of the strategic option", Type: FieldText},
		{Name: "additional_notes", Description: "Additional context (optional)", Type: FieldText, Optional: true},
	}
}

func (RiskReward) Validate(in Inputs) bool {
	for _, field := range []string{"roi_projection", "time_horizon"} {
		if _, ok := number(in, field); !ok {
			return false
		}
	}
	if _, ok := text(in, "option_description"); !ok {
		return false
	}
	return numberInRange(in, "risk_level", 1, 10) &&
		numberInRange(in, "reward_potential", 1, 10) &&
		numberInRange(in, "resource_requirements", 1, 10) &&
		numberInRange(in, "success_probability", 0, 100)
}

func (r RiskReward) Calculate(in Inputs) *Result {
	risk, _ := number(in, "risk_level")
	reward, _ := number(in, "reward_potential")
	resources, _ := number(in, "resource_requirements")
	successPct, _ := number(in, "success_probability")
	roi, _ := number(in, "roi_projection")
	timeHorizon, _ := number(in, "time_horizon")

	successProb := successPct / 100
	riskAdjustedReturn := reward * successProb
	efficiencyRatio := 0.0
	if resources > 0 {
		efficiencyRatio = riskAdjustedReturn / resources
	}
	expectedValue := roi * successProb

	var quadrant, priority string
	switch {
	case risk <= 5 && reward <= 5:
		quadrant, priority = "Low Risk, Low Reward", "Low"
	case risk <= 5 && reward > 5:
		quadrant, priority = "Low Risk, High Reward", "High"
	case risk > 5 && reward <= 5:
		quadrant, priority = "High Risk, Low Reward", "Very Low"
	default:
		quadrant, priority = "High Risk, High Reward", "Medium"
	}

	overall := (riskAdjustedReturn + efficiencyRatio) / 2

	scores := map[string]float64{
		"risk_level":            risk,
		"reward_potential":      reward,
		"risk_adjusted_return":  riskAdjustedReturn,
		"efficiency_ratio":      efficiencyRatio,
		"expected_value":        expectedValue,
		"resource_requirements": resources,
	}

	recommendations := []string{
		fmt.Sprintf("Quadrant: %s", quadrant),
		fmt.Sprintf("Priority: %s", priority),
		fmt.Sprintf("Risk-adjusted return: %.2f", riskAdjustedReturn),
		fmt.Sprintf("Efficiency ratio: %.2f", efficiencyRatio),
		fmt.Sprintf("Expected value: %.1f%%", expectedValue),
	}
	switch quadrant {
	case "Low Risk, High Reward":
		recommendations = append(recommendations, "Recommended: Pursue this opportunity")
	case "High Risk, Low Reward":
		recommendations = append(recommendations, "Not recommended: High risk with low returns")
	case "High Risk, High Reward":
		recommendations = append(recommendations, "Consider with caution: High potential but high risk")
	default:
		recommendations = append(recommendations, "Low priority: Limited upside potential")
	}

	visualizations := map[string]any{
		"risk_reward_matrix": map[string]any{
			"risk":     risk,
			"reward":   reward,
			"quadrant": quadrant,
		},
		"metrics_chart": map[string]any{
			"risk_adjusted_return": riskAdjustedReturn,
			"efficiency_ratio":     efficiencyRatio,
			"expected_value":       expectedValue,
		},
	}

	option, _ := text(in, "option_description")

	return &Result{
		FrameworkName:   r.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		OverallScore:    f64ptr(overall),
		AdditionalData: map[string]any{
			"quadrant":            quadrant,
			"priority":            priority,
			"time_horizon":        timeHorizon,
			"success_probability": successProb,
			"option_description":  option,
			"notes":               notes(in),
		},
	}
}

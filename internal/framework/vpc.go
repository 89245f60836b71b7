package framework

import "fmt"

// VPC analyzes the value-price-cost structure of an offering.
type VPC struct{}

func (VPC) Name() string { return "VPC Framework" }

func (VPC) RequiredInputs() []Field {
	return []Field{
		{Name: "cost", Description: "Total cost to create the offering (numeric)", Type: FieldNumber},
		{Name: "price", Description: "Market price point (numeric)", Type: FieldNumber},
		{Name: "value", Description: "Consumer perceived value (numeric)", Type: FieldNumber},
		{Name: "additional_notes", Description: "Any additional context (optional)", Type: FieldText, Optional: true},
	}
}

func (VPC) Validate(in Inputs) bool {
	for _, field := range []string{"cost", "price", "value"} {
		v, ok := number(in, field)
		if !ok || v <= 0 {
			return false
		}
	}
	return true
}

func (v VPC) Calculate(in Inputs) *Result {
	cost, _ := number(in, "cost")
	price, _ := number(in, "price")
	value, _ := number(in, "value")

	margin := price - cost
	marginPercent := 0.0
	valuePremium := 0.0
	if price > 0 {
		marginPercent = margin / price * 100
		valuePremium = (value - price) / price * 100
	}

	scores := map[string]float64{
		"cost":           cost,
		"price":          price,
		"value":          value,
		"margin":         margin,
		"margin_percent": marginPercent,
		"value_premium":  valuePremium,
	}

	// Branch order is significant: first match wins.
	var strategy string
	switch {
	case value > price && margin > 0:
		strategy = "Differentiation"
	case price <= cost:
		strategy = "Loss Leader"
	case marginPercent < 10:
		strategy = "Cost Leadership"
	default:
		strategy = "Balanced"
	}

	recommendations := []string{
		fmt.Sprintf("Current strategy: %s", strategy),
		fmt.Sprintf("Margin: $%.2f (%.1f%%)", margin, marginPercent),
		fmt.Sprintf("Value premium: %.1f%%", valuePremium),
	}

	visualizations := map[string]any{
		"triangle": map[string]any{
			"cost":  cost,
			"price": price,
			"value": value,
		},
		"metrics": scores,
	}

	return &Result{
		FrameworkName:   v.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		AdditionalData:  map[string]any{"strategy": strategy},
	}
}

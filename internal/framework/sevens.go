package framework

import (
	"fmt"
	"strings"
)

// sevenSElements lists the seven S dimensions in schema order.
var sevenSElements = []string{
	"strategy", "structure", "systems", "shared_values", "style", "staff", "skills",
}

var sevenSAdvice = map[string]string{
	"strategy":      "Strategy: Clarify strategic direction and communicate vision more effectively",
	"structure":     "Structure: Review organizational hierarchy and reporting relationships",
	"systems":       "Systems: Upgrade processes and technology infrastructure",
	"shared_values": "Shared Values: Strengthen company culture and value alignment",
	"style":         "Style: Develop leadership capabilities and management approach",
	"staff":         "Staff: Invest in talent development and organizational capabilities",
	"skills":        "Skills: Build core competencies and technical capabilities",
}

// SevenS scores organizational alignment across the McKinsey 7S dimensions.
type SevenS struct{}

func (SevenS) Name() string { return "McKinsey 7S Framework" }

func (SevenS) RequiredInputs() []Field {
	return []Field{
		{Name: "strategy", Description: "Current strategic approach and focus (1-10 scale)", Type: FieldNumber},
		{Name: "structure", Description: "Organizational hierarchy and reporting effectiveness (1-10 scale)", Type: FieldNumber},
		{Name: "systems", Description: "Processes, procedures, and IT infrastructure quality (1-10 scale)", Type: FieldNumber},
		{Name: "shared_values", Description: "Company culture and core beliefs alignment (1-10 scale)", Type: FieldNumber},
		{Name: "style", Description: "Leadership approach and management effectiveness (1-10 scale)", Type: FieldNumber},
		{Name: "staff", Description: "Human resources and organizational capabilities (1-10 scale)", Type: FieldNumber},
		{Name: "skills", Description: "Core competencies and capabilities strength (1-10 scale)", Type: FieldNumber},
		{Name: "additional_notes", Description: "Any additional context or observations (optional)", Type: FieldText, Optional: true},
	}
}

func (SevenS) Validate(in Inputs) bool {
	for _, element := range sevenSElements {
		if !numberInRange(in, element, 1, 10) {
			return false
		}
	}
	return true
}

func (s SevenS) Calculate(in Inputs) *Result {
	scores := make(map[string]float64, len(sevenSElements))
	values := make([]float64, 0, len(sevenSElements))
	labels := make([]string, 0, len(sevenSElements))
	for _, element := range sevenSElements {
		v, _ := number(in, element)
		scores[element] = v
		values = append(values, v)
		labels = append(labels, titleLabel(element))
	}

	overall := mean(values...)

	var weak, strong []string
	for _, element := range sevenSElements {
		if scores[element] < 6 {
			weak = append(weak, element)
		}
		if scores[element] >= 8 {
			strong = append(strong, element)
		}
	}

	recommendations := make([]string, 0, len(weak)+2)
	if overall >= 7.5 {
		recommendations = append(recommendations, "Strong organizational alignment detected - good foundation for strategic initiatives")
	} else {
		recommendations = append(recommendations, "Organizational alignment needs improvement before major strategic moves")
	}
	if len(weak) > 0 {
		recommendations = append(recommendations, fmt.Sprintf("Priority improvement areas: %s", strings.Join(weak, ", ")))
	}
	for _, element := range sevenSElements {
		if scores[element] < 6 {
			recommendations = append(recommendations, sevenSAdvice[element])
		}
	}

	alignment := "Weak"
	if overall >= 7.5 {
		alignment = "Strong"
	}

	visualizations := map[string]any{
		"radar_chart": map[string]any{
			"labels":    labels,
			"values":    values,
			"max_value": 10,
		},
		"bar_chart": map[string]any{
			"categories": append([]string(nil), sevenSElements...),
			"values":     values,
		},
		"alignment_gauge": map[string]any{
			"score":     overall,
			"max_score": 10,
			"threshold": 7.5,
		},
	}

	return &Result{
		FrameworkName:   s.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		OverallScore:    f64ptr(overall),
		AdditionalData: map[string]any{
			"weak_areas":       emptyIfNil(weak),
			"strong_areas":     emptyIfNil(strong),
			"alignment_status": alignment,
			"notes":            notes(in),
		},
	}
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

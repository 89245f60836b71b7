package framework

import "fmt"

var gameTheoryActionFields = []string{
	"our_action_1", "our_action_2", "competitor_action_1", "competitor_action_2",
}

var gameTheoryPayoffFields = []string{
	"payoff_11", "payoff_12", "payoff_21", "payoff_22",
	"competitor_payoff_11", "competitor_payoff_12",
	"competitor_payoff_21", "competitor_payoff_22",
}

// GameTheory analyzes a 2x2 competitive game for Nash equilibria and
// dominant strategies.
type GameTheory struct{}

func (GameTheory) Name() string { return "Game Theory Framework" }

func (GameTheory) RequiredInputs() []Field {
	return []Field{
		{Name: "our_action_1", Description: "Our first possible action", Type: FieldText},
		{Name: "our_action_2", Description: "Our second possible action", Type: FieldText},
		{Name: "competitor_action_1", Description: "Competitor first possible action", Type: FieldText},
		{Name: "competitor_action_2", Description: "Competitor second possible action", Type: FieldText},
		{Name: "payoff_11", Description: "Our payoff when both choose action 1 (numeric)", Type: FieldNumber},
		{Name: "payoff_12", Description: "Our payoff when we choose 1, competitor chooses 2 (numeric)", Type: FieldNumber},
		{Name: "payoff_21", Description: "Our payoff when we choose 2, competitor chooses 1 (numeric)", Type: FieldNumber},
		{Name: "payoff_22", Description: "Our payoff when both choose action 2 (numeric)", Type: FieldNumber},
		{Name: "competitor_payoff_11", Description: "Competitor payoff when both choose action 1 (numeric)", Type: FieldNumber},
		{Name: "competitor_payoff_12", Description: "Competitor payoff when we choose 1, they choose 2 (numeric)", Type: FieldNumber},
		{Name: "competitor_payoff_21", Description: "Competitor payoff when we choose 2, they choose 1 (numeric)", Type: FieldNumber},
		{Name: "competitor_payoff_22", Description: "Competitor payoff when both choose action 2 (numeric)", Type: FieldNumber},
		{Name: "additional_notes", Description: "Additional context (optional)", Type: FieldText, Optional: true},
	}
}

func (GameTheory) Validate(in Inputs) bool {
	for _, field := range gameTheoryActionFields {
		if _, ok := in[field]; !ok {
			return false
		}
	}
	for _, field := range gameTheoryPayoffFields {
		if _, ok := number(in, field); !ok {
			return false
		}
	}
	return true
}

func (g GameTheory) Calculate(in Inputs) *Result {
	our := payoffMatrix(in, "payoff")
	competitor := payoffMatrix(in, "competitor_payoff")

	equilibria := nashEquilibria(our, competitor)
	dominant := dominantStrategy(our)

	ourActions := []string{asString(in["our_action_1"]), asString(in["our_action_2"])}
	competitorActions := []string{asString(in["competitor_action_1"]), asString(in["competitor_action_2"])}

	var recommendations []string
	if len(equilibria) > 0 {
		for _, cell := range equilibria {
			recommendations = append(recommendations, fmt.Sprintf(
				"Nash equilibrium: %s vs %s (payoff: %g)",
				ourActions[cell[0]], competitorActions[cell[1]], our[cell[0]][cell[1]]))
		}
	} else {
		recommendations = append(recommendations, "No pure strategy Nash equilibrium found")
	}
	if dominant != nil {
		recommendations = append(recommendations, fmt.Sprintf("Dominant strategy: %s", ourActions[*dominant]))
	}

	scores := map[string]float64{
		"payoff_scenario_11": our[0][0],
		"payoff_scenario_12": our[0][1],
		"payoff_scenario_21": our[1][0],
		"payoff_scenario_22": our[1][1],
	}

	visualizations := map[string]any{
		"payoff_matrix": map[string]any{
			"our_actions":        ourActions,
			"competitor_actions": competitorActions,
			"our_payoffs":        our,
			"competitor_payoffs": competitor,
		},
		"nash_equilibria": equilibria,
	}

	return &Result{
		FrameworkName:   g.Name(),
		Scores:          scores,
		Recommendations: recommendations,
		Visualizations:  visualizations,
		AdditionalData: map[string]any{
			"nash_equilibria":   equilibria,
			"dominant_strategy": dominant,
			"notes":             notes(in),
		},
	}
}

func payoffMatrix(in Inputs, prefix string) [2][2]float64 {
	var m [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := number(in, fmt.Sprintf("%s_%d%d", prefix, i+1, j+1))
			m[i][j] = v
		}
	}
	return m
}

// nashEquilibria returns every pure-strategy equilibrium cell in row-major
// order. A cell holds when no unilateral deviation strictly improves the
// deviating player's payoff; ties do not break the equilibrium.
func nashEquilibria(our, competitor [2][2]float64) [][2]int {
	cells := make([][2]int, 0, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			ourBest := true
			for altI := 0; altI < 2; altI++ {
				if altI != i && our[altI][j] > our[i][j] {
					ourBest = false
					break
				}
			}
			competitorBest := true
			for altJ := 0; altJ < 2; altJ++ {
				if altJ != j && competitor[i][altJ] > competitor[i][j] {
					competitorBest = false
					break
				}
			}
			if ourBest && competitorBest {
				cells = append(cells, [2]int{i, j})
			}
		}
	}
	return cells
}

// dominantStrategy returns the first row index that is strictly greater than
// every other row in every column, or nil when no row dominates.
func dominantStrategy(m [2][2]float64) *int {
	for i := 0; i < 2; i++ {
		dominates := true
		for altI := 0; altI < 2 && dominates; altI++ {
			if altI == i {
				continue
			}
			for j := 0; j < 2; j++ {
				if m[i][j] <= m[altI][j] {
					dominates = false
					break
				}
			}
		}
		if dominates {
			row := i
			return &row
		}
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

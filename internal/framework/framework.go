package framework

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FieldType tags how a boundary layer should coerce a raw input value.
type FieldType string

const (
	// FieldNumber marks inputs that must arrive as float64.
	FieldNumber FieldType = "number"
	// FieldText marks free-form string inputs.
	FieldText FieldType = "text"
)

// Field describes one entry of a calculator's input schema.
type Field struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        FieldType `json:"type"`
	Optional    bool      `json:"optional"`
}

// Inputs is a validated input mapping for a single calculation.
type Inputs map[string]any

// Result is the immutable output of one framework calculation.
type Result struct {
	FrameworkName   string             `json:"framework_name" yaml:"framework_name"`
	Scores          map[string]float64 `json:"scores" yaml:"scores"`
	Recommendations []string           `json:"recommendations" yaml:"recommendations"`
	Visualizations  map[string]any     `json:"visualizations" yaml:"visualizations"`
	OverallScore    *float64           `json:"overall_score,omitempty" yaml:"overall_score,omitempty"`
	AdditionalData  map[string]any     `json:"additional_data,omitempty" yaml:"additional_data,omitempty"`
}

var (
	// ErrInvalidInput reports a schema or range violation.
	ErrInvalidInput = errors.New("invalid inputs provided")
	// ErrNoInputs reports an execute call before any inputs were set.
	ErrNoInputs = errors.New("no inputs provided")
)

// Calculator is a pure scoring strategy: fixed input schema, deterministic formula.
type Calculator interface {
	Name() string
	RequiredInputs() []Field
	Validate(in Inputs) bool
	Calculate(in Inputs) *Result
}

// Framework wraps a Calculator with the current input set and last result.
// A Framework carries at most one in-flight input/result pair and is not
// safe for shared use; construct one per request.
type Framework struct {
	calc   Calculator
	inputs Inputs
	result *Result
}

// New wraps the calculator in a fresh stateful Framework.
func New(calc Calculator) *Framework {
	return &Framework{calc: calc}
}

// Name returns the framework display name.
func (f *Framework) Name() string {
	return f.calc.Name()
}

// RequiredInputs exposes the calculator's input schema.
func (f *Framework) RequiredInputs() []Field {
	return f.calc.RequiredInputs()
}

// SetInputs validates and stores the inputs for the next Execute call.
func (f *Framework) SetInputs(in Inputs) error {
	if !f.calc.Validate(in) {
		return ErrInvalidInput
	}
	f.inputs = in
	return nil
}

// Execute runs the calculation over the current inputs and retains the result.
func (f *Framework) Execute() (*Result, error) {
	if len(f.inputs) == 0 {
		return nil, ErrNoInputs
	}
	f.result = f.calc.Calculate(f.inputs)
	return f.result, nil
}

// VisualizationData returns the last result's visualizations, or an empty map.
func (f *Framework) VisualizationData() map[string]any {
	if f.result == nil {
		return map[string]any{}
	}
	return f.result.Visualizations
}

// Snapshot captures the framework state for persistence: the display name,
// the last validated inputs, and the result when Execute has run.
type Snapshot struct {
	Name   string  `json:"name" yaml:"name"`
	Inputs Inputs  `json:"inputs" yaml:"inputs"`
	Result *Result `json:"result" yaml:"result"`
}

// Snapshot returns the persistable state of the framework.
func (f *Framework) Snapshot() Snapshot {
	return Snapshot{Name: f.calc.Name(), Inputs: f.inputs, Result: f.result}
}

// ExportJSON renders the snapshot as indented JSON.
func (f *Framework) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(f.Snapshot(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("export framework: %w", err)
	}
	return string(data), nil
}

// InputPrompts returns "field: description" lines for interactive collection.
func (f *Framework) InputPrompts() []string {
	fields := f.calc.RequiredInputs()
	prompts := make([]string, 0, len(fields))
	for _, field := range fields {
		prompts = append(prompts, fmt.Sprintf("%s: %s", field.Name, field.Description))
	}
	return prompts
}

// number extracts a numeric input, accepting the types a decoded payload produces.
func number(in Inputs, field string) (float64, bool) {
	switch v := in[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// numberInRange reports whether the field is numeric and within inclusive bounds.
func numberInRange(in Inputs, field string, min, max float64) bool {
	v, ok := number(in, field)
	return ok && v >= min && v <= max
}

// text extracts a non-empty string input.
func text(in Inputs, field string) (string, bool) {
	v, ok := in[field].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// notes returns the optional additional_notes input, defaulting to empty.
func notes(in Inputs) string {
	v, _ := in["additional_notes"].(string)
	return v
}

func mean(values ...float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// titleLabel turns a snake_case field name into a display label.
func titleLabel(field string) string {
	words := strings.Split(field, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func f64ptr(v float64) *float64 {
	return &v
}

package api

import (
	"strconv"
	"strings"

	"decision-toolkit/internal/framework"
)

// coerceInputs prepares a raw request payload for validation. Numeric fields
// submitted as strings are parsed to float64, driven by the schema's type
// tags; empty string values are dropped rather than passed through. Values
// that fail to parse are left as-is so validation rejects them with the
// framework's own error.
func coerceInputs(raw map[string]any, fields []framework.Field) framework.Inputs {
	types := make(map[string]framework.FieldType, len(fields))
	for _, field := range fields {
		types[field.Name] = field.Type
	}

	inputs := make(framework.Inputs, len(raw))
	for key, value := range raw {
		str, isString := value.(string)
		if isString && strings.TrimSpace(str) == "" {
			continue
		}
		if isString && types[key] == framework.FieldNumber {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
				inputs[key] = parsed
				continue
			}
		}
		inputs[key] = value
	}
	return inputs
}

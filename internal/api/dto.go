package api

import (
	"decision-toolkit/internal/framework"
	"decision-toolkit/internal/store"
)

// CreateDecisionRequest carries the free-form decision text.
type CreateDecisionRequest struct {
	DecisionText string `json:"decision_text" binding:"required"`
}

// CreateDecisionResponse returns the derived slug of the new decision.
type CreateDecisionResponse struct {
	Slug string `json:"slug"`
}

// DecisionsResponse lists decision summaries. Skipped counts documents that
// failed to parse and were omitted from the listing.
type DecisionsResponse struct {
	Items   []store.Summary `json:"items"`
	Skipped int             `json:"skipped"`
}

// FrameworkDTO describes one registered framework and its input schema.
type FrameworkDTO struct {
	Key    string            `json:"key"`
	Name   string            `json:"name"`
	Inputs []framework.Field `json:"inputs"`
}

// RunFrameworkResponse wraps a successful framework execution.
type RunFrameworkResponse struct {
	Success bool              `json:"success"`
	Result  *framework.Result `json:"result"`
}

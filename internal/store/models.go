package store

import (
	"time"

	"decision-toolkit/internal/framework"
)

// FrameworkRecord is the latest applied state of one framework within a
// decision. Name is the record's identity key; Result stays nil until the
// framework has executed.
type FrameworkRecord struct {
	Name   string            `yaml:"name" json:"name"`
	Inputs framework.Inputs  `yaml:"inputs" json:"inputs"`
	Result *framework.Result `yaml:"result" json:"result"`
}

// Completed reports whether the record carries an execution result.
func (r FrameworkRecord) Completed() bool {
	return r.Result != nil
}

// Meta holds the decision's identifying fields and timestamps.
type Meta struct {
	Text        string    `yaml:"text" json:"text"`
	Slug        string    `yaml:"slug" json:"slug"`
	CreatedAt   time.Time `yaml:"created_at" json:"created_at"`
	LastUpdated time.Time `yaml:"last_updated" json:"last_updated"`
}

// Counts summarizes the framework records of a decision.
type Counts struct {
	TotalFrameworks     int `yaml:"total_frameworks" json:"total_frameworks"`
	CompletedFrameworks int `yaml:"completed_frameworks" json:"completed_frameworks"`
}

// Decision is the aggregate persisted as one YAML document per slug.
// Frameworks is ordered and unique by record name.
type Decision struct {
	Decision   Meta              `yaml:"decision" json:"decision"`
	Frameworks []FrameworkRecord `yaml:"frameworks" json:"frameworks"`
	Metadata   Counts            `yaml:"metadata" json:"metadata"`
}

// refreshCounts recomputes the summary metadata from the records.
func (d *Decision) refreshCounts() {
	completed := 0
	for _, rec := range d.Frameworks {
		if rec.Completed() {
			completed++
		}
	}
	d.Metadata = Counts{
		TotalFrameworks:     len(d.Frameworks),
		CompletedFrameworks: completed,
	}
}

// Summary is the listing view of a decision.
type Summary struct {
	Slug            string    `json:"slug"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
	FrameworksCount int       `json:"frameworks_count"`
}

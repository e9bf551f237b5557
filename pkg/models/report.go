package models

// MappingReport summarizes a single mapping run
type MappingReport struct {
	TotalFields      int          `json:"total_fields"`
	MappedFields     int          `json:"mapped_fields"`
	UnmappedFields   int          `json:"unmapped_fields"`
	Matches          []FieldMatch `json:"matches"`
	SkippedSources   []string     `json:"skipped_sources,omitempty"`
	UnmatchedSources []string     `json:"unmatched_sources,omitempty"`
	Diagnostics      []string     `json:"diagnostics,omitempty"`
}

// MappingResult is the output of the mapping pipeline: coerced values
// keyed by document field key, plus the run report
type MappingResult struct {
	Values map[string]FieldValue `json:"values"`
	Report MappingReport         `json:"report"`
}

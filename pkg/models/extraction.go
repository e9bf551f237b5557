package models

// ExtractedField is one name/value pair produced by the upstream
// document extractor, with its reported confidence (0-100)
type ExtractedField struct {
	Name       string `json:"field_name" validate:"required"`
	Value      string `json:"field_value"`
	Confidence int    `json:"confidence_score" validate:"min=0,max=100"`
}

// MatchMethod identifies which matching tier produced a match
type MatchMethod string

const (
	MatchMethodExact    MatchMethod = "exact"
	MatchMethodFuzzy    MatchMethod = "fuzzy"
	MatchMethodSemantic MatchMethod = "semantic"
)

// FieldMatch records how a source field was routed to a target field
type FieldMatch struct {
	SourceName string      `json:"source_name"`
	TargetKey  string      `json:"target_key"`
	Score      float64     `json:"score"`
	Method     MatchMethod `json:"method"`
}

package models

// FieldKind identifies how a document field accepts values
type FieldKind string

const (
	FieldKindText       FieldKind = "text"       // Free-form text entry
	FieldKindCheckbox   FieldKind = "checkbox"   // Two-state toggle with export values
	FieldKindRadioGroup FieldKind = "radio_group" // One-of-many selection
	FieldKindChoice     FieldKind = "choice"     // Dropdown/list selection
	FieldKindUnknown    FieldKind = "unknown"    // Unrecognized type code, retained as-is
)

// RadioOption is a selectable state of a radio group
type RadioOption struct {
	Name        string `json:"name"`
	ExportValue string `json:"export_value"`
}

// SchemaField describes one fillable field of a document template
type SchemaField struct {
	Key      string        `json:"key"`
	Name     string        `json:"name"`
	Kind     FieldKind     `json:"kind"`
	OnValue  string        `json:"on_value,omitempty"`
	OffValue string        `json:"off_value,omitempty"`
	Options  []RadioOption `json:"options,omitempty"`
	Choices  []string      `json:"choices,omitempty"`
}

// RawField is a single entry of the field dictionary parsed from a
// document template, before introspection
type RawField struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Value       string   `json:"value,omitempty"`
	States      []string `json:"states,omitempty"`
	Appearances []string `json:"appearances,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Kids        []RawKid `json:"kids,omitempty"`
}

// RawKid is a child widget of a radio group field
type RawKid struct {
	Name        string   `json:"name"`
	Appearances []string `json:"appearances,omitempty"`
}

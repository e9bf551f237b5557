package models

// ValueKind tags the variant held by a FieldValue
type ValueKind string

const (
	ValueKindText           ValueKind = "text"
	ValueKindCheckboxState  ValueKind = "checkbox_state"
	ValueKindRadioSelection ValueKind = "radio_selection"
)

// FieldValue is the coerced value for a single document field. Export
// holds the exact string the document writer should receive: the
// trimmed text for text fields, or the export value ("/Yes", "/Off",
// "/Purchase", ...) for checkboxes and radio groups.
type FieldValue struct {
	Kind   ValueKind `json:"kind"`
	Export string    `json:"export"`
}

// TextValue wraps a text field value
func TextValue(s string) FieldValue {
	return FieldValue{Kind: ValueKindText, Export: s}
}

// CheckboxState wraps a checkbox export value
func CheckboxState(export string) FieldValue {
	return FieldValue{Kind: ValueKindCheckboxState, Export: export}
}

// RadioSelection wraps a radio group export value
func RadioSelection(export string) FieldValue {
	return FieldValue{Kind: ValueKindRadioSelection, Export: export}
}

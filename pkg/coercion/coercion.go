// Package coercion turns free-form extracted values into the exact
// export strings a document field accepts, and gates extractions on
// their reported confidence.
package coercion

import (
	"context"
	"sort"
	"strings"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// DefaultConfidenceThreshold is the minimum confidence an extracted
// field needs to participate in mapping. The threshold itself passes.
const DefaultConfidenceThreshold = 80

// Coercer converts extracted values into field export values
type Coercer struct {
	logger    ectologger.Logger
	tables    *knowledge.Tables
	threshold int
}

// NewCoercer creates a new coercer. A non-positive threshold falls
// back to the default.
func NewCoercer(logger ectologger.Logger, tables *knowledge.Tables, threshold int) *Coercer {
	if threshold <= 0 {
		threshold = DefaultConfidenceThreshold
	}
	return &Coercer{
		logger:    logger,
		tables:    tables,
		threshold: threshold,
	}
}

// Gate splits extracted fields into those confident enough to map and
// the names of those excluded
func (c *Coercer) Gate(fields []models.ExtractedField) ([]models.ExtractedField, []string) {
	kept := make([]models.ExtractedField, 0, len(fields))
	var skipped []string
	for _, field := range fields {
		if field.Confidence >= c.threshold {
			kept = append(kept, field)
		} else {
			skipped = append(skipped, field.Name)
		}
	}
	return kept, skipped
}

// Coerce converts a raw extracted value into the export value for the
// given field. ok is false when the value cannot address the field
// (an unmatched radio option); checkboxes always resolve.
func (c *Coercer) Coerce(ctx context.Context, field models.SchemaField, value string) (models.FieldValue, bool) {
	ctx, span := tracing.StartSpan(ctx, "coercion.Coercer.Coerce")
	defer span.End()

	switch field.Kind {
	case models.FieldKindCheckbox:
		return c.coerceCheckbox(field, value), true
	case models.FieldKindRadioGroup:
		return c.coerceRadio(ctx, field, value)
	default:
		return models.TextValue(strings.TrimSpace(value)), true
	}
}

// coerceCheckbox resolves a value to the field's ON or OFF export
// value. Negative indicators are checked before affirmative ones so
// phrasings like "is not a citizen" land OFF. Unrecognized values
// also land OFF.
func (c *Coercer) coerceCheckbox(field models.SchemaField, value string) models.FieldValue {
	on := field.OnValue
	if on == "" {
		on = "/Yes"
	}
	off := field.OffValue
	if off == "" {
		off = "/Off"
	}

	lowered := strings.ToLower(strings.TrimSpace(value))
	if lowered == "" {
		return models.CheckboxState(off)
	}

	for _, negative := range c.tables.Negatives {
		if strings.Contains(lowered, negative) {
			return models.CheckboxState(off)
		}
	}

	for _, affirmative := range c.tables.Affirmatives {
		if strings.Contains(lowered, affirmative) {
			return models.CheckboxState(on)
		}
	}

	return models.CheckboxState(off)
}

// coerceRadio resolves a value to one of the group's option export
// values: exact case-insensitive equality first, then substring
// containment with longer option keys tried before shorter ones
func (c *Coercer) coerceRadio(ctx context.Context, field models.SchemaField, value string) (models.FieldValue, bool) {
	lowered := strings.ToLower(strings.TrimSpace(value))

	for _, option := range field.Options {
		export := strings.ToLower(strings.TrimPrefix(option.ExportValue, "/"))
		if lowered == export || lowered == strings.ToLower(option.Name) {
			return models.RadioSelection(option.ExportValue), true
		}
	}

	options := make([]models.RadioOption, len(field.Options))
	copy(options, field.Options)
	sort.SliceStable(options, func(i, j int) bool {
		return len(options[i].Name) > len(options[j].Name)
	})

	for _, option := range options {
		name := strings.ToLower(option.Name)
		export := strings.ToLower(strings.TrimPrefix(option.ExportValue, "/"))
		if name != "" && strings.Contains(lowered, name) {
			return models.RadioSelection(option.ExportValue), true
		}
		if export != "" && strings.Contains(lowered, export) {
			return models.RadioSelection(option.ExportValue), true
		}
	}

	c.logger.WithContext(ctx).WithFields(map[string]any{
		"field": field.Key,
		"value": value,
	}).Warn("Value matched no radio option")

	return models.FieldValue{}, false
}

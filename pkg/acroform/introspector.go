// Package acroform turns the raw field dictionary of a document
// template into a typed schema the mapping pipeline can target.
package acroform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/formsiq/fieldmap/pkg/models"
)

const (
	typeText   = "/Tx"
	typeButton = "/Btn"
	typeChoice = "/Ch"

	// OffState is the universal unchecked state of button fields
	OffState = "/Off"

	// defaultOnState is assumed when a checkbox declares no usable
	// checked state anywhere in its dictionary
	defaultOnState = "/Yes"
)

// Introspect builds the typed schema for a template from its raw
// field dictionary. An empty dictionary is a hard error; individual
// fields with unrecognized type codes degrade to kind "unknown" and
// are retained.
func Introspect(fields map[string]models.RawField) (map[string]models.SchemaField, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("template has no fillable fields")
	}

	schema := make(map[string]models.SchemaField, len(fields))
	for key, raw := range fields {
		schema[key] = introspectField(key, raw)
	}

	return schema, nil
}

func introspectField(key string, raw models.RawField) models.SchemaField {
	field := models.SchemaField{
		Key:  key,
		Name: raw.Name,
	}
	if field.Name == "" {
		field.Name = key
	}

	switch raw.Type {
	case typeText:
		field.Kind = models.FieldKindText
	case typeButton:
		if len(raw.Kids) > 0 {
			field.Kind = models.FieldKindRadioGroup
			field.Options = radioOptions(raw.Kids)
		} else {
			field.Kind = models.FieldKindCheckbox
			field.OnValue = checkboxOnValue(raw)
			field.OffValue = OffState
		}
	case typeChoice:
		field.Kind = models.FieldKindChoice
		field.Choices = raw.Choices
	default:
		field.Kind = models.FieldKindUnknown
	}

	return field
}

// checkboxOnValue resolves the checked export value of a checkbox.
// Resolution order: the explicit state list, the appearance states,
// the field's current value, then the "/Yes" default.
func checkboxOnValue(raw models.RawField) string {
	if len(raw.States) > 0 {
		hasOff := false
		for _, state := range raw.States {
			if state == OffState {
				hasOff = true
				break
			}
		}
		if !hasOff {
			return raw.States[0]
		}
		for _, state := range raw.States {
			if state != OffState {
				return state
			}
		}
	}

	for _, state := range raw.Appearances {
		if state != OffState {
			return state
		}
	}

	if raw.Value != "" && raw.Value != OffState {
		return raw.Value
	}

	return defaultOnState
}

// radioOptions resolves the selectable states of a radio group from
// its child widgets. A kid with no usable appearance state gets a
// positional placeholder so the group stays addressable.
func radioOptions(kids []models.RawKid) []models.RadioOption {
	options := make([]models.RadioOption, 0, len(kids))
	for i, kid := range kids {
		export := ""
		for _, state := range kid.Appearances {
			if state != OffState {
				export = state
				break
			}
		}
		if export == "" {
			export = "/Option" + strconv.Itoa(i)
		}

		name := kid.Name
		if name == "" {
			name = strings.TrimPrefix(export, "/")
		}

		options = append(options, models.RadioOption{
			Name:        name,
			ExportValue: export,
		})
	}
	return options
}

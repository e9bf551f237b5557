package coercion

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/models"
)

func newTestCoercer() *Coercer {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	return NewCoercer(logger, knowledge.Default(), DefaultConfidenceThreshold)
}

func TestGate_ThresholdBoundary(t *testing.T) {
	c := newTestCoercer()

	fields := []models.ExtractedField{
		{Name: "at threshold", Value: "a", Confidence: 80},
		{Name: "below threshold", Value: "b", Confidence: 79},
		{Name: "well above", Value: "c", Confidence: 100},
		{Name: "zero", Value: "d", Confidence: 0},
	}

	kept, skipped := c.Gate(fields)
	require.Len(t, kept, 2)
	assert.Equal(t, "at threshold", kept[0].Name)
	assert.Equal(t, "well above", kept[1].Name)
	assert.Equal(t, []string{"below threshold", "zero"}, skipped)
}

func TestCoerce_TextPassthrough(t *testing.T) {
	c := newTestCoercer()
	field := models.SchemaField{Key: "Borrower Name", Kind: models.FieldKindText}

	value, ok := c.Coerce(context.Background(), field, "  Jane Q. Example  ")
	require.True(t, ok)
	assert.Equal(t, models.ValueKindText, value.Kind)
	assert.Equal(t, "Jane Q. Example", value.Export)
}

func TestCoerceCheckbox(t *testing.T) {
	c := newTestCoercer()
	field := models.SchemaField{
		Key:      "Borrower Self Employed",
		Kind:     models.FieldKindCheckbox,
		OnValue:  "/Yes",
		OffValue: "/Off",
	}

	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{"plain yes", "Yes", "/Yes"},
		{"plain no", "No", "/Off"},
		{"true", "true", "/Yes"},
		{"checked", "checked", "/Yes"},
		{"unchecked", "unchecked", "/Off"},
		{"negative phrase beats affirmative prefix", "is not a citizen", "/Off"},
		{"affirmative word", "Selected", "/Yes"},
		{"agreement", "agree", "/Yes"},
		{"not applicable", "Not Applicable", "/Off"},
		{"empty", "", "/Off"},
		{"whitespace only", "   ", "/Off"},
		{"gibberish fails closed", "perhaps?", "/Off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := c.Coerce(context.Background(), field, tt.value)
			require.True(t, ok, "checkbox coercion is total")
			assert.Equal(t, models.ValueKindCheckboxState, value.Kind)
			assert.Equal(t, tt.expected, value.Export)
		})
	}
}

func TestCoerceCheckbox_FieldSpecificExports(t *testing.T) {
	c := newTestCoercer()
	field := models.SchemaField{
		Key:      "Declaration J",
		Kind:     models.FieldKindCheckbox,
		OnValue:  "/1",
		OffValue: "/2",
	}

	on, _ := c.Coerce(context.Background(), field, "Yes")
	assert.Equal(t, "/1", on.Export)

	off, _ := c.Coerce(context.Background(), field, "No")
	assert.Equal(t, "/2", off.Export)
}

func TestCoerceRadio(t *testing.T) {
	c := newTestCoercer()
	field := models.SchemaField{
		Key:  "Occupancy",
		Kind: models.FieldKindRadioGroup,
		Options: []models.RadioOption{
			{Name: "Borrower", ExportValue: "/Borrower"},
			{Name: "Co-Borrower", ExportValue: "/CoBorrower"},
			{Name: "Investment", ExportValue: "/Investment"},
		},
	}

	t.Run("exact export match", func(t *testing.T) {
		value, ok := c.Coerce(context.Background(), field, "borrower")
		require.True(t, ok)
		assert.Equal(t, "/Borrower", value.Export)
	})

	t.Run("case-insensitive name match", func(t *testing.T) {
		value, ok := c.Coerce(context.Background(), field, "INVESTMENT")
		require.True(t, ok)
		assert.Equal(t, "/Investment", value.Export)
	})

	t.Run("longest option wins substring match", func(t *testing.T) {
		// "Co-Borrower will occupy" contains both "Borrower" and
		// "Co-Borrower"; the longer key must win
		value, ok := c.Coerce(context.Background(), field, "Co-Borrower will occupy the property")
		require.True(t, ok)
		assert.Equal(t, "/CoBorrower", value.Export)
	})

	t.Run("no match leaves field unset", func(t *testing.T) {
		_, ok := c.Coerce(context.Background(), field, "a stranger entirely")
		assert.False(t, ok)
	})

	t.Run("radio selection kind", func(t *testing.T) {
		value, ok := c.Coerce(context.Background(), field, "Investment property")
		require.True(t, ok)
		assert.Equal(t, models.ValueKindRadioSelection, value.Kind)
	})
}

func TestNewCoercer_DefaultThreshold(t *testing.T) {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	c := NewCoercer(logger, knowledge.Default(), 0)

	kept, _ := c.Gate([]models.ExtractedField{{Name: "x", Confidence: 79}})
	assert.Empty(t, kept)
}

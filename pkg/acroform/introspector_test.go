package acroform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsiq/fieldmap/pkg/models"
)

func TestIntrospect_EmptySchema(t *testing.T) {
	_, err := Introspect(map[string]models.RawField{})
	assert.Error(t, err)

	_, err = Introspect(nil)
	assert.Error(t, err)
}

func TestIntrospect_TextField(t *testing.T) {
	schema, err := Introspect(map[string]models.RawField{
		"Borrower Name": {Type: "/Tx", Name: "Borrower Name"},
	})
	require.NoError(t, err)

	field := schema["Borrower Name"]
	assert.Equal(t, models.FieldKindText, field.Kind)
	assert.Equal(t, "Borrower Name", field.Name)
	assert.Empty(t, field.OnValue)
}

func TestIntrospect_CheckboxOnValue(t *testing.T) {
	tests := []struct {
		name     string
		raw      models.RawField
		expected string
	}{
		{
			name:     "explicit states with off",
			raw:      models.RawField{Type: "/Btn", States: []string{"/Off", "/1"}},
			expected: "/1",
		},
		{
			name:     "explicit states without off takes first",
			raw:      models.RawField{Type: "/Btn", States: []string{"/Checked", "/Maybe"}},
			expected: "/Checked",
		},
		{
			name:     "appearance states exclude off",
			raw:      models.RawField{Type: "/Btn", Appearances: []string{"/Off", "/On"}},
			expected: "/On",
		},
		{
			name:     "states win over appearances",
			raw:      models.RawField{Type: "/Btn", States: []string{"/Off", "/X"}, Appearances: []string{"/Off", "/Y"}},
			expected: "/X",
		},
		{
			name:     "current value as fallback",
			raw:      models.RawField{Type: "/Btn", Value: "/Selected"},
			expected: "/Selected",
		},
		{
			name:     "off current value is ignored",
			raw:      models.RawField{Type: "/Btn", Value: "/Off"},
			expected: "/Yes",
		},
		{
			name:     "bare checkbox defaults",
			raw:      models.RawField{Type: "/Btn"},
			expected: "/Yes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := Introspect(map[string]models.RawField{"box": tt.raw})
			require.NoError(t, err)

			field := schema["box"]
			assert.Equal(t, models.FieldKindCheckbox, field.Kind)
			assert.Equal(t, tt.expected, field.OnValue)
			assert.Equal(t, "/Off", field.OffValue)
		})
	}
}

func TestIntrospect_RadioGroup(t *testing.T) {
	schema, err := Introspect(map[string]models.RawField{
		"Purpose of Loan": {
			Type: "/Btn",
			Name: "Purpose of Loan",
			Kids: []models.RawKid{
				{Name: "Purchase", Appearances: []string{"/Off", "/Purchase"}},
				{Name: "Refinance", Appearances: []string{"/Off", "/Refinance"}},
				{Name: "Broken Widget"},
			},
		},
	})
	require.NoError(t, err)

	field := schema["Purpose of Loan"]
	require.Equal(t, models.FieldKindRadioGroup, field.Kind)
	require.Len(t, field.Options, 3)

	assert.Equal(t, "/Purchase", field.Options[0].ExportValue)
	assert.Equal(t, "/Refinance", field.Options[1].ExportValue)
	// kid with no usable appearance state gets a positional placeholder
	assert.Equal(t, "/Option2", field.Options[2].ExportValue)
}

func TestIntrospect_ChoiceAndUnknown(t *testing.T) {
	schema, err := Introspect(map[string]models.RawField{
		"State":   {Type: "/Ch", Choices: []string{"CA", "TX", "WA"}},
		"Sig":     {Type: "/Sig"},
		"Unnamed": {Type: "/Tx"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.FieldKindChoice, schema["State"].Kind)
	assert.Equal(t, []string{"CA", "TX", "WA"}, schema["State"].Choices)

	// odd fields are retained, not dropped
	assert.Equal(t, models.FieldKindUnknown, schema["Sig"].Kind)

	// key doubles as the descriptive name when none is present
	assert.Equal(t, "Unnamed", schema["Unnamed"].Name)
}

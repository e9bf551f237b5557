package normalizers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Borrower Name", "borrowername"},
		{"underscores dropped", "borrower_first_name", "borrowerfirstname"},
		{"txt prefix stripped", "txt_loan_amount", "loanamount"},
		{"chk prefix stripped", "chk_self_employed", "selfemployed"},
		{"field suffix stripped", "property_address_field", "propertyaddress"},
		{"prefix and suffix", "form_borrower_ssn_value", "borrowerssn"},
		{"punctuation dropped", "Borrower's S.S.N.", "borrowersssn"},
		{"mixed case and dashes", "Co-Borrower-DOB", "coborrowerdob"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FieldKey(tt.input))
		})
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain name", "Borrower Name", "borrower name"},
		{"underscores to spaces", "borrower_first_name", "borrower first name"},
		{"affixes stripped", "txt_purpose_of_loan_field", "purpose of loan"},
		{"runs collapse", "loan --  amount", "loan amount"},
		{"leading and trailing stripped", "  (Borrower) ", "borrower"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FieldName(tt.input))
		})
	}
}

func TestFieldNormalizersIdempotent(t *testing.T) {
	inputs := []string{
		"txt_Borrower_Name_field",
		"chk_self_employed_box",
		"form_input_value",
		"Purpose of Loan",
		"Co-Borrower's Employer (Current)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			key := FieldKey(input)
			assert.Equal(t, key, FieldKey(key))

			name := FieldName(input)
			assert.Equal(t, name, FieldName(name))
		})
	}
}

func TestApplyChain(t *testing.T) {
	result := ApplyChain("  Txt_Loan_Amount  ", "trim", "field_key")
	assert.Equal(t, "loanamount", result)

	// unknown normalizer names are passthrough
	assert.Equal(t, "abc", ApplyChain("abc", "does_not_exist"))
}

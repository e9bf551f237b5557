package processor

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsiq/fieldmap/pkg/acroform"
	"github.com/formsiq/fieldmap/pkg/coercion"
	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/mappingtable"
	"github.com/formsiq/fieldmap/pkg/matching"
	"github.com/formsiq/fieldmap/pkg/models"
)

func newTestProcessor() *Processor {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	tables := knowledge.Default()
	return New(
		logger,
		acroform.NewLoader(logger),
		matching.NewEngine(logger, tables, matching.DefaultConfig()),
		coercion.NewCoercer(logger, tables, coercion.DefaultConfidenceThreshold),
		mappingtable.NewReconciler(logger, ""),
	)
}

func loanApplicationSchema(t *testing.T) map[string]models.SchemaField {
	t.Helper()
	schema, err := acroform.Introspect(map[string]models.RawField{
		"Borrower Name": {Type: "/Tx", Name: "Borrower Name"},
		"Loan Amount":   {Type: "/Tx", Name: "Loan Amount"},
		"Borrower Self Employed": {
			Type:        "/Btn",
			Name:        "Borrower Self Employed",
			Appearances: []string{"/Off", "/Yes"},
		},
		"Purpose of Loan": {
			Type: "/Btn",
			Name: "Purpose of Loan",
			Kids: []models.RawKid{
				{Name: "Purchase", Appearances: []string{"/Off", "/Purchase"}},
				{Name: "Refinance", Appearances: []string{"/Off", "/Refinance"}},
				{Name: "Construction", Appearances: []string{"/Off", "/Construction"}},
			},
		},
	})
	require.NoError(t, err)
	return schema
}

func TestMapFields_EndToEnd(t *testing.T) {
	p := newTestProcessor()
	schema := loanApplicationSchema(t)

	fields := []models.ExtractedField{
		{Name: "Borrower Name", Value: "Jane Q. Example", Confidence: 95},
		{Name: "Borrower Self Employed", Value: "No", Confidence: 90},
		{Name: "Purpose of Loan", Value: "Purchase", Confidence: 95},
		{Name: "Loan Amount", Value: "250000", Confidence: 79},
	}

	result, err := p.MapFields(context.Background(), schema, fields)
	require.NoError(t, err)

	// text passthrough
	assert.Equal(t, "Jane Q. Example", result.Values["Borrower Name"].Export)

	// negative checkbox value lands on the OFF export value
	assert.Equal(t, "/Off", result.Values["Borrower Self Employed"].Export)
	assert.Equal(t, models.ValueKindCheckboxState, result.Values["Borrower Self Employed"].Kind)

	// radio selection carries the option's export value
	assert.Equal(t, "/Purchase", result.Values["Purpose of Loan"].Export)
	assert.Equal(t, models.ValueKindRadioSelection, result.Values["Purpose of Loan"].Kind)

	// confidence 79 never reaches the document
	_, mapped := result.Values["Loan Amount"]
	assert.False(t, mapped)
	assert.Equal(t, []string{"Loan Amount"}, result.Report.SkippedSources)

	assert.Equal(t, 4, result.Report.TotalFields)
	assert.Equal(t, 3, result.Report.MappedFields)
	assert.Equal(t, 1, result.Report.UnmappedFields)
}

func TestMapFields_ConfidenceBoundary(t *testing.T) {
	p := newTestProcessor()
	schema := loanApplicationSchema(t)

	result, err := p.MapFields(context.Background(), schema, []models.ExtractedField{
		{Name: "Loan Amount", Value: "250000", Confidence: 80},
	})
	require.NoError(t, err)

	assert.Equal(t, "250000", result.Values["Loan Amount"].Export)
	assert.Empty(t, result.Report.SkippedSources)
}

func TestMapFields_FuzzyFallback(t *testing.T) {
	p := newTestProcessor()
	schema := loanApplicationSchema(t)

	// typo'd name is absent from the mapping table and lands via the
	// fuzzy tier instead
	result, err := p.MapFields(context.Background(), schema, []models.ExtractedField{
		{Name: "Borower Name", Value: "Jane Q. Example", Confidence: 95},
	})
	require.NoError(t, err)

	require.Len(t, result.Report.Matches, 1)
	assert.Equal(t, "Borrower Name", result.Report.Matches[0].TargetKey)
	assert.Equal(t, models.MatchMethodFuzzy, result.Report.Matches[0].Method)
	assert.Equal(t, "Jane Q. Example", result.Values["Borrower Name"].Export)
}

func TestMapFields_ClusterRouting(t *testing.T) {
	p := newTestProcessor()
	schema, err := acroform.Introspect(map[string]models.RawField{
		"VA":           {Type: "/Btn", Name: "VA", Appearances: []string{"/Off", "/Yes"}},
		"FHA":          {Type: "/Btn", Name: "FHA", Appearances: []string{"/Off", "/Yes"}},
		"Conventional": {Type: "/Btn", Name: "Conventional", Appearances: []string{"/Off", "/Yes"}},
	})
	require.NoError(t, err)

	result, err := p.MapFields(context.Background(), schema, []models.ExtractedField{
		{Name: "Type of Mortgage", Value: "VA loan", Confidence: 92},
	})
	require.NoError(t, err)

	assert.Equal(t, "/Yes", result.Values["VA"].Export)
	_, fha := result.Values["FHA"]
	assert.False(t, fha)
}

func TestMapFields_UnmatchedRadioLeavesFieldUnset(t *testing.T) {
	p := newTestProcessor()
	schema := loanApplicationSchema(t)

	result, err := p.MapFields(context.Background(), schema, []models.ExtractedField{
		{Name: "Purpose of Loan", Value: "something else entirely", Confidence: 95},
	})
	require.NoError(t, err)

	_, set := result.Values["Purpose of Loan"]
	assert.False(t, set)
	assert.NotEmpty(t, result.Report.Diagnostics)
}

func TestMapFields_EmptySchemaFails(t *testing.T) {
	p := newTestProcessor()

	_, err := p.MapFields(context.Background(), map[string]models.SchemaField{}, nil)
	assert.Error(t, err)
}

package matching

import (
	"context"
	"testing"

	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/models"
)

func newTestEngine() *Engine {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	return NewEngine(logger, knowledge.Default(), DefaultConfig())
}

func textSchema(names ...string) map[string]models.SchemaField {
	schema := make(map[string]models.SchemaField, len(names))
	for _, name := range names {
		schema[name] = models.SchemaField{Key: name, Name: name, Kind: models.FieldKindText}
	}
	return schema
}

func matchFor(matches []models.FieldMatch, source string) (models.FieldMatch, bool) {
	for _, m := range matches {
		if m.SourceName == source {
			return m, true
		}
	}
	return models.FieldMatch{}, false
}

func TestEngine_ExactTier(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name", "Loan Amount")

	matches := e.Match(context.Background(), []string{"borrower_name"}, schema, nil)
	require.Len(t, matches, 1)

	assert.Equal(t, "Borrower Name", matches[0].TargetKey)
	assert.Equal(t, 1.0, matches[0].Score)
	assert.Equal(t, models.MatchMethodExact, matches[0].Method)
}

func TestEngine_TargetExclusivity(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name")

	// both sources normalize to the same key; only the first may claim
	matches := e.Match(context.Background(), []string{"Borrower Name", "borrower_name"}, schema, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, "Borrower Name", matches[0].SourceName)
}

func TestEngine_ClaimedTargetsUnavailable(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name")

	claimed := map[string]bool{"Borrower Name": true}
	matches := e.Match(context.Background(), []string{"Borrower Name"}, schema, claimed)
	assert.Empty(t, matches)

	// the caller's set is untouched
	assert.Equal(t, map[string]bool{"Borrower Name": true}, claimed)
}

func TestEngine_FuzzyTier(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name", "Property Address")

	matches := e.Match(context.Background(), []string{"Borower Name"}, schema, nil)
	require.Len(t, matches, 1)

	assert.Equal(t, "Borrower Name", matches[0].TargetKey)
	assert.Equal(t, models.MatchMethodFuzzy, matches[0].Method)
	assert.GreaterOrEqual(t, matches[0].Score, 0.6)
	assert.Less(t, matches[0].Score, 1.0)
}

func TestEngine_FuzzyCutoffRejects(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name")

	matches := e.Match(context.Background(), []string{"zzz qqq www"}, schema, nil)
	assert.Empty(t, matches)
}

func TestEngine_SemanticSynonymTier(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower SSN", "Property Address")

	matches := e.Match(context.Background(), []string{"Social Security Number"}, schema, nil)
	require.Len(t, matches, 1)

	assert.Equal(t, "Borrower SSN", matches[0].TargetKey)
	assert.Equal(t, models.MatchMethodSemantic, matches[0].Method)
}

func TestEngine_SemanticCategoryFallback(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Base Income", "Estate Will Be Held In")

	matches := e.Match(context.Background(), []string{"Borrower Monthly Salary"}, schema, nil)
	require.Len(t, matches, 1)

	assert.Equal(t, "Borrower Base Income", matches[0].TargetKey)
	assert.Equal(t, models.MatchMethodSemantic, matches[0].Method)
	assert.GreaterOrEqual(t, matches[0].Score, 0.6)
}

func TestEngine_MatchClusters(t *testing.T) {
	e := newTestEngine()
	schema := map[string]models.SchemaField{
		"VA":           {Key: "VA", Name: "VA", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
		"FHA":          {Key: "FHA", Name: "FHA", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
		"Conventional": {Key: "Conventional", Name: "Conventional", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
	}

	fields := []models.ExtractedField{
		{Name: "Mortgage Applied For", Value: "VA Loan", Confidence: 95},
	}

	matches := e.MatchClusters(context.Background(), fields, schema, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, "VA", matches[0].TargetKey)
	assert.Equal(t, "va", matches[0].Keyword)
}

func TestEngine_MatchClustersIndicatorOrder(t *testing.T) {
	e := newTestEngine()
	schema := map[string]models.SchemaField{
		"Purchase":  {Key: "Purchase", Name: "Purchase", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
		"Refinance": {Key: "Refinance", Name: "Refinance", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
	}

	fields := []models.ExtractedField{
		{Name: "Purpose of Loan", Value: "Home purchase", Confidence: 95},
	}

	matches := e.MatchClusters(context.Background(), fields, schema, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, "Purchase", matches[0].TargetKey)
}

func TestEngine_MatchClustersIgnoresNonClusterFields(t *testing.T) {
	e := newTestEngine()
	schema := map[string]models.SchemaField{
		"VA": {Key: "VA", Name: "VA", Kind: models.FieldKindCheckbox, OnValue: "/Yes", OffValue: "/Off"},
	}

	fields := []models.ExtractedField{
		{Name: "Borrower Name", Value: "Jane Example", Confidence: 95},
		{Name: "Mortgage Applied For", Value: "something unrecognizable", Confidence: 95},
	}

	matches := e.MatchClusters(context.Background(), fields, schema, nil)
	assert.Empty(t, matches)
}

func TestEngine_UnmatchedSourcesLeftAlone(t *testing.T) {
	e := newTestEngine()
	schema := textSchema("Borrower Name")

	sources := []string{"Borrower Name", "Completely Unrelated Thing 42"}
	matches := e.Match(context.Background(), sources, schema, nil)
	require.Len(t, matches, 1)

	_, ok := matchFor(matches, "Completely Unrelated Thing 42")
	assert.False(t, ok)
}

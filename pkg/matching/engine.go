// Package matching routes extracted field names onto document schema
// fields using exact, fuzzy, and semantic tiers.
package matching

import (
	"context"
	"sort"
	"strings"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/knowledge"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/normalizers"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// EngineConfig holds matching thresholds
type EngineConfig struct {
	FuzzyCutoff    float64 // minimum similarity for fuzzy and semantic matches
	SemanticStrong float64 // direct synonym score below which the category fallback runs
	CategoryBonus  float64 // added to same-category similarity, capped at 1.0
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() EngineConfig {
	return EngineConfig{
		FuzzyCutoff:    0.6,
		SemanticStrong: 0.8,
		CategoryBonus:  0.2,
	}
}

// Engine matches extracted field names against a document schema
type Engine struct {
	logger ectologger.Logger
	tables *knowledge.Tables
	scorer *Scorer
	config EngineConfig
}

// NewEngine creates a new matching engine
func NewEngine(logger ectologger.Logger, tables *knowledge.Tables, config EngineConfig) *Engine {
	return &Engine{
		logger: logger,
		tables: tables,
		scorer: NewScorer(),
		config: config,
	}
}

// target is a precomputed view of one available schema field
type target struct {
	key        string
	keyForm    string
	nameForm   string
	synonyms   []string
	categories map[string]bool
}

// ClusterMatch records a checkbox selected by the cluster routine
type ClusterMatch struct {
	SourceName string
	TargetKey  string
	Keyword    string
}

// Match routes each source name onto at most one unclaimed schema
// field. Tiers run in order (exact, fuzzy, semantic) and each claimed
// target is excluded from later tiers and sources. The claimed set is
// not mutated; targets listed in it are simply unavailable.
func (e *Engine) Match(ctx context.Context, sourceNames []string, schema map[string]models.SchemaField, claimed map[string]bool) []models.FieldMatch {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.Match")
	defer span.End()

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"method":       "Match",
		"source_count": len(sourceNames),
		"target_count": len(schema),
	})

	targets := e.buildTargets(schema, claimed)

	var matches []models.FieldMatch
	remaining := sourceNames

	for _, pass := range []func([]string, []*target) []models.FieldMatch{
		e.exactPass,
		e.fuzzyPass,
		e.semanticPass,
	} {
		passMatches := pass(remaining, targets)
		if len(passMatches) == 0 {
			continue
		}

		taken := make(map[string]bool, len(passMatches))
		matchedSources := make(map[string]bool, len(passMatches))
		for _, m := range passMatches {
			taken[m.TargetKey] = true
			matchedSources[m.SourceName] = true
		}

		kept := targets[:0]
		for _, t := range targets {
			if !taken[t.key] {
				kept = append(kept, t)
			}
		}
		targets = kept

		left := make([]string, 0, len(remaining))
		for _, name := range remaining {
			if !matchedSources[name] {
				left = append(left, name)
			}
		}
		remaining = left

		matches = append(matches, passMatches...)
	}

	log.WithFields(map[string]any{
		"matched":   len(matches),
		"unmatched": len(remaining),
	}).Debug("Completed field matching")

	return matches
}

// buildTargets precomputes normalized forms, synonyms, and categories
// for every unclaimed schema field, in deterministic key order
func (e *Engine) buildTargets(schema map[string]models.SchemaField, claimed map[string]bool) []*target {
	keys := make([]string, 0, len(schema))
	for key := range schema {
		if !claimed[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	targets := make([]*target, 0, len(keys))
	for _, key := range keys {
		field := schema[key]
		nameForm := normalizers.FieldName(field.Name)

		t := &target{
			key:        key,
			keyForm:    normalizers.FieldKey(field.Name),
			nameForm:   nameForm,
			synonyms:   []string{nameForm},
			categories: make(map[string]bool),
		}

		for _, concept := range e.tables.Concepts {
			if conceptAppearsIn(concept, nameForm) {
				t.synonyms = append(t.synonyms, concept.Name)
				t.synonyms = append(t.synonyms, concept.Variants...)
			}
		}

		for _, category := range e.tables.Categories {
			for _, indicator := range category.Indicators {
				if strings.Contains(nameForm, indicator) {
					t.categories[category.Name] = true
					break
				}
			}
		}

		targets = append(targets, t)
	}

	return targets
}

func conceptAppearsIn(concept knowledge.Concept, nameForm string) bool {
	if strings.Contains(nameForm, concept.Name) {
		return true
	}
	for _, variant := range concept.Variants {
		if strings.Contains(nameForm, variant) {
			return true
		}
	}
	return false
}

// exactPass claims targets whose exact-match form equals the source's
func (e *Engine) exactPass(sources []string, targets []*target) []models.FieldMatch {
	var matches []models.FieldMatch
	taken := make(map[string]bool)

	for _, source := range sources {
		key := normalizers.FieldKey(source)
		for _, t := range targets {
			if taken[t.key] || t.keyForm != key {
				continue
			}
			matches = append(matches, models.FieldMatch{
				SourceName: source,
				TargetKey:  t.key,
				Score:      1.0,
				Method:     models.MatchMethodExact,
			})
			taken[t.key] = true
			break
		}
	}

	return matches
}

// fuzzyPass claims the best target by sequence similarity at or above
// the cutoff. Ties keep the first target in sorted key order.
func (e *Engine) fuzzyPass(sources []string, targets []*target) []models.FieldMatch {
	var matches []models.FieldMatch
	taken := make(map[string]bool)

	for _, source := range sources {
		nameForm := normalizers.FieldName(source)

		var best *target
		bestScore := 0.0
		for _, t := range targets {
			if taken[t.key] {
				continue
			}
			score := e.scorer.SequenceRatio(nameForm, t.nameForm)
			if score >= e.config.FuzzyCutoff && score > bestScore {
				best = t
				bestScore = score
			}
		}

		if best != nil {
			matches = append(matches, models.FieldMatch{
				SourceName: source,
				TargetKey:  best.key,
				Score:      bestScore,
				Method:     models.MatchMethodFuzzy,
			})
			taken[best.key] = true
		}
	}

	return matches
}

// semanticPass scores sources against target synonym expansions, then
// falls back to category-bonus scoring when the direct score is weak
func (e *Engine) semanticPass(sources []string, targets []*target) []models.FieldMatch {
	var matches []models.FieldMatch
	taken := make(map[string]bool)

	for _, source := range sources {
		nameForm := normalizers.FieldName(source)

		var best *target
		bestScore := 0.0

		for _, t := range targets {
			if taken[t.key] {
				continue
			}
			for _, synonym := range t.synonyms {
				if !strings.Contains(nameForm, synonym) && !strings.Contains(synonym, nameForm) &&
					e.scorer.SequenceRatio(nameForm, synonym) <= 0.7 {
					continue
				}
				score := e.scorer.SequenceRatio(nameForm, synonym)
				if score >= e.config.FuzzyCutoff && score > bestScore {
					best = t
					bestScore = score
				}
			}
		}

		if best == nil || bestScore < e.config.SemanticStrong {
			if t, score := e.categoryFallback(nameForm, targets, taken, bestScore); t != nil {
				best = t
				bestScore = score
			}
		}

		if best != nil {
			matches = append(matches, models.FieldMatch{
				SourceName: source,
				TargetKey:  best.key,
				Score:      bestScore,
				Method:     models.MatchMethodSemantic,
			})
			taken[best.key] = true
		}
	}

	return matches
}

// categoryFallback rescoring: targets sharing the source's category
// and concept get the base similarity plus the category bonus
func (e *Engine) categoryFallback(nameForm string, targets []*target, taken map[string]bool, bestScore float64) (*target, float64) {
	category := ""
	for _, cat := range e.tables.Categories {
		for _, indicator := range cat.Indicators {
			if strings.Contains(nameForm, indicator) {
				category = cat.Name
				break
			}
		}
		if category != "" {
			break
		}
	}
	if category == "" {
		return nil, 0
	}

	var sourceConcepts []knowledge.Concept
	for _, concept := range e.tables.Concepts {
		if conceptAppearsIn(concept, nameForm) {
			sourceConcepts = append(sourceConcepts, concept)
		}
	}
	if len(sourceConcepts) == 0 {
		return nil, 0
	}

	var best *target
	for _, t := range targets {
		if taken[t.key] || !t.categories[category] {
			continue
		}
		for _, concept := range sourceConcepts {
			if !conceptAppearsIn(concept, t.nameForm) {
				continue
			}
			score := e.scorer.SequenceRatio(nameForm, t.nameForm) + e.config.CategoryBonus
			if score > 1.0 {
				score = 1.0
			}
			if score >= e.config.FuzzyCutoff && score > bestScore {
				best = t
				bestScore = score
			}
		}
	}

	return best, bestScore
}

// MatchClusters routes categorical source fields (mortgage type,
// amortization type, loan purpose, occupancy, estate type) onto their
// checkbox groups. The value classifies against each cluster's ordered
// indicator lists; the first hit selects the checkbox whose name
// carries that keyword. Bypasses the one-to-one tiers.
func (e *Engine) MatchClusters(ctx context.Context, fields []models.ExtractedField, schema map[string]models.SchemaField, claimed map[string]bool) []ClusterMatch {
	ctx, span := tracing.StartSpan(ctx, "matching.Engine.MatchClusters")
	defer span.End()

	log := e.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "MatchClusters",
	})

	keys := make([]string, 0, len(schema))
	for key := range schema {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var matches []ClusterMatch
	taken := make(map[string]bool)

	for _, field := range fields {
		nameForm := normalizers.FieldName(field.Name)
		cluster := e.clusterFor(nameForm)
		if cluster == nil {
			continue
		}

		keyword := classifyClusterValue(cluster, field.Value)
		if keyword == "" {
			log.WithFields(map[string]any{
				"source": field.Name,
				"value":  field.Value,
			}).Debug("Cluster value matched no known choice")
			continue
		}

		for _, key := range keys {
			schemaField := schema[key]
			if schemaField.Kind != models.FieldKindCheckbox || claimed[key] || taken[key] {
				continue
			}
			if !containsWords(normalizers.FieldName(schemaField.Name), keyword) {
				continue
			}
			matches = append(matches, ClusterMatch{
				SourceName: field.Name,
				TargetKey:  key,
				Keyword:    keyword,
			})
			taken[key] = true
		}
	}

	return matches
}

func (e *Engine) clusterFor(nameForm string) *knowledge.CheckboxCluster {
	for i := range e.tables.Clusters {
		for _, source := range e.tables.Clusters[i].Sources {
			if nameForm == source {
				return &e.tables.Clusters[i]
			}
		}
	}
	return nil
}

// classifyClusterValue walks choices in order; first indicator hit wins
func classifyClusterValue(cluster *knowledge.CheckboxCluster, value string) string {
	lowered := strings.ToLower(value)
	for _, choice := range cluster.Choices {
		for _, indicator := range choice.Indicators {
			if strings.Contains(lowered, indicator) {
				return choice.Keyword
			}
		}
	}
	return ""
}

// containsWords reports whether keyword appears in name as a
// contiguous run of whole words
func containsWords(name, keyword string) bool {
	nameWords := strings.Fields(name)
	keyWords := strings.Fields(keyword)
	if len(keyWords) == 0 || len(keyWords) > len(nameWords) {
		return false
	}

	for i := 0; i+len(keyWords) <= len(nameWords); i++ {
		match := true
		for j, kw := range keyWords {
			if nameWords[i+j] != kw {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

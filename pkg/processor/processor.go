// Package processor runs the full mapping pipeline: schema
// introspection, confidence gating, table routing, tiered matching,
// cluster routing, and value coercion.
package processor

import (
	"context"
	"fmt"

	"github.com/Gobusters/ectologger"

	"github.com/formsiq/fieldmap/pkg/acroform"
	"github.com/formsiq/fieldmap/pkg/coercion"
	"github.com/formsiq/fieldmap/pkg/mappingtable"
	"github.com/formsiq/fieldmap/pkg/matching"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/normalizers"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// Processor orchestrates one mapping run
type Processor struct {
	logger     ectologger.Logger
	loader     *acroform.Loader
	engine     *matching.Engine
	coercer    *coercion.Coercer
	reconciler *mappingtable.Reconciler
}

// New creates a new processor
func New(logger ectologger.Logger, loader *acroform.Loader, engine *matching.Engine, coercer *coercion.Coercer, reconciler *mappingtable.Reconciler) *Processor {
	return &Processor{
		logger:     logger,
		loader:     loader,
		engine:     engine,
		coercer:    coercer,
		reconciler: reconciler,
	}
}

// MapTemplate loads the template schema at path and maps the
// extracted fields onto it
func (p *Processor) MapTemplate(ctx context.Context, templatePath string, fields []models.ExtractedField) (*models.MappingResult, error) {
	ctx, span := tracing.StartSpan(ctx, "processor.Processor.MapTemplate")
	defer span.End()

	schema, err := p.loader.Load(ctx, templatePath)
	if err != nil {
		return nil, err
	}

	return p.MapFields(ctx, schema, fields)
}

// MapFields maps extracted fields onto an introspected schema.
// Sources below the confidence threshold are excluded up front. The
// reconciled mapping table routes known names directly; the tiered
// matcher handles the rest; checkbox clusters run last over the
// remaining checkbox groups. Every mapped value is coerced to the
// exact export string its field accepts.
func (p *Processor) MapFields(ctx context.Context, schema map[string]models.SchemaField, fields []models.ExtractedField) (*models.MappingResult, error) {
	ctx, span := tracing.StartSpan(ctx, "processor.Processor.MapFields")
	defer span.End()

	if len(schema) == 0 {
		return nil, fmt.Errorf("cannot map onto an empty schema")
	}

	log := p.logger.WithContext(ctx).WithFields(map[string]any{
		"method":        "MapFields",
		"schema_fields": len(schema),
		"source_fields": len(fields),
	})

	gated, skipped := p.coercer.Gate(fields)

	values := make(map[string]models.FieldValue)
	used := make(map[string]bool)
	var matches []models.FieldMatch
	var diagnostics []string

	valueOf := make(map[string]string, len(gated))
	for _, field := range gated {
		if _, ok := valueOf[field.Name]; !ok {
			valueOf[field.Name] = field.Value
		}
	}

	// tier 0: the reconciled mapping table
	table := p.reconciler.Reconcile(ctx, mappingtable.Authoritative())
	tableIndex := make(map[string]string, len(table))
	for name, key := range table {
		tableIndex[normalizers.FieldKey(name)] = key
	}

	consumed := make(map[string]bool, len(gated))
	for _, field := range gated {
		targetKey, ok := table[field.Name]
		if !ok {
			targetKey, ok = tableIndex[normalizers.FieldKey(field.Name)]
		}
		if !ok {
			continue
		}

		target, exists := schema[targetKey]
		if !exists || used[targetKey] {
			continue
		}

		consumed[field.Name] = true
		value, coerced := p.coercer.Coerce(ctx, target, field.Value)
		if !coerced {
			diagnostics = append(diagnostics, fmt.Sprintf("value %q does not address field %q", field.Value, targetKey))
			continue
		}

		values[targetKey] = value
		used[targetKey] = true
		matches = append(matches, models.FieldMatch{
			SourceName: field.Name,
			TargetKey:  targetKey,
			Score:      1.0,
			Method:     models.MatchMethodExact,
		})
	}

	// tiers 1-3: exact, fuzzy, semantic
	var unresolved []string
	for _, field := range gated {
		if !consumed[field.Name] {
			unresolved = append(unresolved, field.Name)
		}
	}

	for _, match := range p.engine.Match(ctx, unresolved, schema, used) {
		consumed[match.SourceName] = true
		target := schema[match.TargetKey]

		value, coerced := p.coercer.Coerce(ctx, target, valueOf[match.SourceName])
		if !coerced {
			diagnostics = append(diagnostics, fmt.Sprintf("value %q does not address field %q", valueOf[match.SourceName], match.TargetKey))
			continue
		}

		values[match.TargetKey] = value
		used[match.TargetKey] = true
		matches = append(matches, match)
	}

	// checkbox clusters route categorical sources one-to-many
	for _, cluster := range p.engine.MatchClusters(ctx, gated, schema, used) {
		target := schema[cluster.TargetKey]
		on := target.OnValue
		if on == "" {
			on = "/Yes"
		}

		consumed[cluster.SourceName] = true
		values[cluster.TargetKey] = models.CheckboxState(on)
		used[cluster.TargetKey] = true
		matches = append(matches, models.FieldMatch{
			SourceName: cluster.SourceName,
			TargetKey:  cluster.TargetKey,
			Score:      1.0,
			Method:     models.MatchMethodSemantic,
		})
	}

	var unmatched []string
	for _, field := range gated {
		if !consumed[field.Name] {
			unmatched = append(unmatched, field.Name)
		}
	}

	result := &models.MappingResult{
		Values: values,
		Report: models.MappingReport{
			TotalFields:      len(schema),
			MappedFields:     len(values),
			UnmappedFields:   len(schema) - len(values),
			Matches:          matches,
			SkippedSources:   skipped,
			UnmatchedSources: unmatched,
			Diagnostics:      diagnostics,
		},
	}

	log.WithFields(map[string]any{
		"mapped":    result.Report.MappedFields,
		"skipped":   len(skipped),
		"unmatched": len(unmatched),
	}).Info("Completed mapping run")

	return result, nil
}

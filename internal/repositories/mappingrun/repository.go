package mappingrun

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/formsiq/fieldmap/pkg/database"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/tracing"
)

// Repository handles mapping run persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new mapping run repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new mapping run record
func (r *Repository) Create(ctx context.Context, tenantID string, req models.CreateMappingRunRequest) (*models.MappingRun, error) {
	ctx, span := tracing.StartSpan(ctx, "mappingrun.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method":      "Create",
		"tenant_id":   tenantID,
		"template_id": req.TemplateID,
	})

	run := &models.MappingRun{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		TemplateID:    req.TemplateID,
		TotalFields:   req.TotalFields,
		MappedFields:  req.MappedFields,
		SkippedFields: req.SkippedFields,
		Report:        req.Report,
		CreatedAt:     time.Now().UTC(),
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("mapping_runs")
	sb.Cols("id", "tenant_id", "template_id", "total_fields", "mapped_fields", "skipped_fields", "report", "created_at")
	sb.Values(run.ID, run.TenantID, run.TemplateID, run.TotalFields, run.MappedFields, run.SkippedFields, run.Report, run.CreatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create mapping run")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create mapping run")
	}

	log.WithFields(map[string]any{"id": run.ID}).Info("Created mapping run")
	return run, nil
}

// Get retrieves a mapping run by ID
func (r *Repository) Get(ctx context.Context, tenantID string, id string) (*models.MappingRun, error) {
	ctx, span := tracing.StartSpan(ctx, "mappingrun.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "tenant_id", "template_id", "total_fields", "mapped_fields", "skipped_fields", "report", "created_at")
	sb.From("mapping_runs")
	sb.Where(
		sb.Equal("id", id),
		sb.Equal("tenant_id", tenantID),
	)

	query, args := sb.Build()
	var run models.MappingRun
	if err := r.db.GetContext(ctx, &run, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("mapping run %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get mapping run")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get mapping run")
	}

	return &run, nil
}

// List retrieves mapping runs for a tenant, newest first
func (r *Repository) List(ctx context.Context, tenantID string, templateID *string, page, pageSize int) ([]models.MappingRun, int, error) {
	ctx, span := tracing.StartSpan(ctx, "mappingrun.Repository.List")
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("mapping_runs")
	countWhere := []string{countSb.Equal("tenant_id", tenantID)}
	if templateID != nil {
		countWhere = append(countWhere, countSb.Equal("template_id", *templateID))
	}
	countSb.Where(countWhere...)

	countQuery, countArgs := countSb.Build()
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count mapping runs")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count mapping runs")
	}

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "tenant_id", "template_id", "total_fields", "mapped_fields", "skipped_fields", "report", "created_at")
	sb.From("mapping_runs")
	where := []string{sb.Equal("tenant_id", tenantID)}
	if templateID != nil {
		where = append(where, sb.Equal("template_id", *templateID))
	}
	sb.Where(where...)
	sb.OrderBy("created_at DESC")
	sb.Limit(pageSize).Offset(offset)

	query, args := sb.Build()
	var runs []models.MappingRun
	if err := r.db.SelectContext(ctx, &runs, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list mapping runs")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list mapping runs")
	}

	return runs, totalCount, nil
}

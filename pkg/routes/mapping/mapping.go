package mapping

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/formsiq/fieldmap/config"
	"github.com/formsiq/fieldmap/internal/repositories/mappingrun"
	"github.com/formsiq/fieldmap/pkg/appcontext"
	"github.com/formsiq/fieldmap/pkg/events"
	"github.com/formsiq/fieldmap/pkg/models"
	"github.com/formsiq/fieldmap/pkg/processor"
)

var validate = validator.New()

// Register registers mapping routes
func Register(g *echo.Group) {
	g.POST("", MapFields)
	g.GET("/runs", ListRuns)
	g.GET("/runs/:id", GetRun)
}

// MapFieldsRequest is the request body for a mapping run
type MapFieldsRequest struct {
	TemplateID string                  `json:"template_id"`
	Fields     []models.ExtractedField `json:"fields" validate:"required,min=1,dive"`
}

// MapFieldsResponse is the response body for a mapping run
type MapFieldsResponse struct {
	RunID  string                       `json:"run_id,omitempty"`
	Values map[string]models.FieldValue `json:"values"`
	Report models.MappingReport         `json:"report"`
}

// MapFields runs the mapping pipeline against the configured template
func MapFields(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := appcontext.GetTenantID(ctx)

	var req MapFieldsRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, cfg, err := ectoinject.GetContext[*config.Config](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	templatePath := cfg.TemplatePath
	if req.TemplateID != "" && cfg.TemplateDir != "" {
		templatePath = filepath.Join(cfg.TemplateDir, req.TemplateID+".json")
	}

	ctx, proc, err := ectoinject.GetContext[*processor.Processor](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	result, err := proc.MapTemplate(ctx, templatePath, req.Fields)
	if err != nil {
		return httperror.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	resp := MapFieldsResponse{
		Values: result.Values,
		Report: result.Report,
	}

	// run history and events are best-effort extras around the result
	ctx, repo, err := ectoinject.GetContext[*mappingrun.Repository](ctx)
	if err == nil && repo != nil {
		reportJSON, _ := json.Marshal(result.Report)
		run, createErr := repo.Create(ctx, tenantID, models.CreateMappingRunRequest{
			TemplateID:    req.TemplateID,
			TotalFields:   result.Report.TotalFields,
			MappedFields:  result.Report.MappedFields,
			SkippedFields: len(result.Report.SkippedSources),
			Report:        reportJSON,
		})
		if createErr == nil {
			resp.RunID = run.ID

			ctx, emitter, emitErr := ectoinject.GetContext[*events.Emitter](ctx)
			if emitErr == nil && emitter != nil {
				if err := emitter.EmitMappingCompleted(ctx, run, result.Report); err != nil {
					ctx, logger, _ := ectoinject.GetContext[ectologger.Logger](ctx)
					if logger != nil {
						logger.WithContext(ctx).WithError(err).Warn("Mapping event emission failed")
					}
				}
			}
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// ListRuns lists persisted mapping runs for the tenant
func ListRuns(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := appcontext.GetTenantID(ctx)

	ctx, repo, err := ectoinject.GetContext[*mappingrun.Repository](ctx)
	if err != nil || repo == nil {
		return httperror.NewHTTPError(http.StatusNotImplemented, "run history is not enabled")
	}

	var templateID *string
	if v := c.QueryParam("template_id"); v != "" {
		templateID = &v
	}

	page := intQueryParam(c, "page", 1)
	pageSize := intQueryParam(c, "page_size", 20)

	runs, total, err := repo.List(ctx, tenantID, templateID, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"runs":  runs,
		"total": total,
	})
}

// GetRun gets a mapping run by ID
func GetRun(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID := appcontext.GetTenantID(ctx)

	ctx, repo, err := ectoinject.GetContext[*mappingrun.Repository](ctx)
	if err != nil || repo == nil {
		return httperror.NewHTTPError(http.StatusNotImplemented, "run history is not enabled")
	}

	run, err := repo.Get(ctx, tenantID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, run)
}

func intQueryParam(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

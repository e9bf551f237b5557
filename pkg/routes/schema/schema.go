package schema

import (
	"net/http"
	"path/filepath"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/formsiq/fieldmap/config"
	"github.com/formsiq/fieldmap/pkg/acroform"
)

// Register registers schema routes
func Register(g *echo.Group) {
	g.GET("", GetSchema)
}

// GetSchema returns the introspected schema for a template. Without a
// template_id query parameter the configured default template is used.
func GetSchema(c echo.Context) error {
	ctx := c.Request().Context()

	ctx, cfg, err := ectoinject.GetContext[*config.Config](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	templatePath := cfg.TemplatePath
	if templateID := c.QueryParam("template_id"); templateID != "" && cfg.TemplateDir != "" {
		templatePath = filepath.Join(cfg.TemplateDir, templateID+".json")
	}

	ctx, loader, err := ectoinject.GetContext[*acroform.Loader](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	fields, err := loader.Load(ctx, templatePath)
	if err != nil {
		return httperror.NewHTTPError(http.StatusNotFound, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]any{
		"template":    templatePath,
		"field_count": len(fields),
		"fields":      fields,
	})
}

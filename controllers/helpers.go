package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/phuslu/log"

	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError flattens validator errors into "field: rule" pairs.
func validationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), strings.SplitN(fe.Namespace(), ".", 2)[0]+".")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// fail maps known errors to status codes and logs the rest.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, engine.ErrInvalidHorizon):
		badRequest(c, err.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// withHorizon fills in the default horizon and rejects ones over the limit.
func withHorizon(cfg config.Config, a *models.AssumptionSet) error {
	if a.Months == 0 {
		a.Months = cfg.DefaultHorizon
	}
	if cfg.MaxHorizon > 0 && a.Months > cfg.MaxHorizon {
		return fmt.Errorf("months must be at most %d", cfg.MaxHorizon)
	}
	return nil
}

// resolveOverrides prefers explicit overrides over a named preset. The
// returned name labels the run.
func resolveOverrides(kind models.ScenarioKind, explicit *models.ScenarioOverrides) (*models.ScenarioOverrides, string, error) {
	if explicit != nil {
		if err := validate.Struct(explicit); err != nil {
			return nil, "", errors.New(validationError(err))
		}
		if kind == "" {
			return explicit, "custom", nil
		}
		return explicit, string(kind), nil
	}
	if kind == "" {
		return nil, string(models.ScenarioBase), nil
	}
	o, ok := engine.PresetOverrides(kind)
	if !ok {
		return nil, "", fmt.Errorf("unknown scenario %q", kind)
	}
	return o, string(kind), nil
}

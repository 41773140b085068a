package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

// bindPreview decodes and validates inline scenario inputs. It writes the
// error response itself and reports whether the handler should go on.
func bindPreview(c *gin.Context, cfg config.Config) (models.PreviewRequest, bool) {
	var req models.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body")
		return req, false
	}
	if err := withHorizon(cfg, &req.Assumptions); err != nil {
		badRequest(c, err.Error())
		return req, false
	}
	if err := validate.Struct(req.ScenarioInput); err != nil {
		badRequest(c, validationError(err))
		return req, false
	}
	return req, true
}

// PreviewProjection runs inline inputs without storing anything.
func PreviewProjection(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindPreview(c, cfg)
		if !ok {
			return
		}
		o, name, err := resolveOverrides(req.Scenario, req.ScenarioOverrides)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		in := req.ScenarioInput
		in.ScenarioOverrides = o
		res, err := engine.RunScenario(in)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"scenario_name": name,
			"projections":   res.Projections,
			"summary":       res.Summary,
			"sanity":        engine.RunSanityChecks(in.Company, in.Assumptions),
		})
	}
}

// CompareScenarios runs the three presets, plus any explicit overrides as
// "custom", side by side.
func CompareScenarios(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindPreview(c, cfg)
		if !ok {
			return
		}
		named := map[string]*models.ScenarioOverrides{}
		for _, kind := range []models.ScenarioKind{models.ScenarioBase, models.ScenarioOptimistic, models.ScenarioPessimistic} {
			o, _ := engine.PresetOverrides(kind)
			named[string(kind)] = o
		}
		if req.ScenarioOverrides != nil {
			o, _, err := resolveOverrides("", req.ScenarioOverrides)
			if err != nil {
				badRequest(c, err.Error())
				return
			}
			named["custom"] = o
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		results, err := engine.RunScenarios(ctx, req.ScenarioInput, named)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"scenarios": results})
	}
}

// RunProjection runs a company's stored inputs and persists the result.
func RunProjection(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RunRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		o, name, err := resolveOverrides(req.Scenario, req.Overrides)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.ScenarioName != "" {
			name = req.ScenarioName
		}

		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		co, err := database.GetCompany(ctx, uid, req.CompanyID)
		if err != nil {
			fail(c, err)
			return
		}
		var set models.StoredAssumptionSet
		if req.AssumptionSetID != nil {
			set, err = database.GetAssumptionSet(ctx, uid, *req.AssumptionSetID)
			if err == nil && set.CompanyID != co.ID {
				err = database.ErrNotFound
			}
		} else {
			set, err = database.LatestAssumptionSet(ctx, co.ID)
		}
		if err != nil {
			fail(c, err)
			return
		}
		if cfg.MaxHorizon > 0 && set.Months > cfg.MaxHorizon {
			badRequest(c, "months must be at most "+strconv.Itoa(cfg.MaxHorizon))
			return
		}
		plan, err := database.ListHiringPlan(ctx, co.ID)
		if err != nil {
			fail(c, err)
			return
		}

		res, err := engine.RunScenario(models.ScenarioInput{
			Company:           co.CompanyState,
			Assumptions:       set.AssumptionSet,
			HiringPlan:        plan,
			ScenarioOverrides: o,
		})
		if err != nil {
			fail(c, err)
			return
		}
		run := models.ProjectionRun{
			CompanyID:       co.ID,
			AssumptionSetID: &set.ID,
			ScenarioName:    name,
			Overrides:       o,
			ScenarioResult:  res,
		}
		if err := database.SaveRun(ctx, &run); err != nil {
			fail(c, err)
			return
		}
		log.Info().Str("run_id", run.ID).Int64("company_id", co.ID).Str("scenario", name).
			Int("months", len(res.Projections)).Msg("projection saved")
		c.JSON(http.StatusCreated, gin.H{
			"run":    run,
			"sanity": engine.RunSanityChecks(co.CompanyState, set.AssumptionSet),
		})
	}
}

func GetProjection() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		run, err := database.GetRun(ctx, c.GetInt64("user_id"), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, run)
	}
}

func ListProjections() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := idParam(c, "id")
		if !ok {
			return
		}
		limit, _ := strconv.Atoi(c.Query("limit"))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := database.GetCompany(ctx, c.GetInt64("user_id"), companyID); err != nil {
			fail(c, err)
			return
		}
		runs, err := database.ListRuns(ctx, companyID, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"runs": runs})
	}
}

package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"runwayplanner/backend/advisor"
	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

// Advise answers a question about a stored run. The model is only used while
// the user has token quota left; usage is charged afterwards.
func Advise(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AdviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		run, err := database.GetRun(ctx, uid, c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		co, err := database.GetCompany(ctx, uid, run.CompanyID)
		if err != nil {
			fail(c, err)
			return
		}
		var set models.StoredAssumptionSet
		if run.AssumptionSetID != nil {
			set, err = database.GetAssumptionSet(ctx, uid, *run.AssumptionSetID)
		} else {
			set, err = database.LatestAssumptionSet(ctx, co.ID)
		}
		if err != nil {
			fail(c, err)
			return
		}
		facts := advisor.Facts{
			Company:     co.CompanyState,
			Assumptions: set.AssumptionSet,
			Summary:     run.Summary,
			Sanity:      engine.RunSanityChecks(co.CompanyState, set.AssumptionSet),
		}

		var narrator advisor.Narrator
		usage := database.GetTokenUsage(ctx, uid)
		if cfg.GeminiAPIKey != "" && usage.Remaining() > 0 {
			narrator = advisor.Gemini{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel}
		}

		actx, acancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer acancel()
		a := advisor.Advise(actx, narrator, req.Question, facts)
		if a.TokensUsed > 0 {
			if err := database.ChargeTokens(actx, uid, a.TokensUsed); err != nil {
				log.Error().Err(err).Int64("user_id", uid).Msg("token charge failed")
			}
			usage.Used += a.TokensUsed
		}
		c.JSON(http.StatusOK, gin.H{"advice": a, "tokens": usageJSON(usage)})
	}
}

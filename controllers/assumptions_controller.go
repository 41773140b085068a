package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

// CreateAssumptions stores a new assumption set and returns it with a sanity
// check of the company plus the new set.
func CreateAssumptions(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req models.CreateAssumptionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		if err := withHorizon(cfg, &req.AssumptionSet); err != nil {
			badRequest(c, err.Error())
			return
		}
		if err := validate.Struct(req.AssumptionSet); err != nil {
			badRequest(c, validationError(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		co, err := database.GetCompany(ctx, c.GetInt64("user_id"), companyID)
		if err != nil {
			fail(c, err)
			return
		}
		set, err := database.CreateAssumptionSet(ctx, co.ID, req.Name, req.AssumptionSet)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"assumption_set": set,
			"sanity":         engine.RunSanityChecks(co.CompanyState, set.AssumptionSet),
		})
	}
}

func GetAssumptions() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		set, err := database.GetAssumptionSet(ctx, c.GetInt64("user_id"), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, set)
	}
}

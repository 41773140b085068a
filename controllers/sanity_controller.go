package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

// SanityCheck reviews assumptions without range validation so that
// out-of-range inputs come back as warnings rather than a 400.
func SanityCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SanityCheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		res := engine.RunSanityChecks(req.Company, req.Assumptions)
		c.JSON(http.StatusOK, gin.H{
			"result":     res,
			"benchmarks": engine.GetBenchmarks(req.Company.Stage),
		})
	}
}

func Benchmarks() gin.HandlerFunc {
	return func(c *gin.Context) {
		stage := models.Stage(c.Param("stage"))
		c.JSON(http.StatusOK, gin.H{
			"stage":      stage,
			"benchmarks": engine.GetBenchmarks(stage),
		})
	}
}

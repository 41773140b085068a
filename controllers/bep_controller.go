package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"runwayplanner/backend/engine"
	"runwayplanner/backend/models"
)

// BreakEven returns the customers and MRR needed to cover one month's fixed
// and salary costs at the given month index.
func BreakEven() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.BreakEvenRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.MonthIndex < 0 {
			badRequest(c, "invalid body or month_index")
			return
		}
		if req.Assumptions.ARPU <= 0 {
			badRequest(c, "arpu must be > 0")
			return
		}
		for _, it := range req.HiringPlan {
			if err := validate.Struct(it); err != nil {
				badRequest(c, validationError(err))
				return
			}
		}
		o, _, err := resolveOverrides("", req.ScenarioOverrides)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		bep := engine.BreakEven(req.Assumptions, req.HiringPlan, o, req.MonthIndex)
		resp := gin.H{"break_even": bep}
		if !bep.Reachable {
			resp["message"] = "contribution per customer is not positive; no customer count breaks even"
		}
		c.JSON(http.StatusOK, resp)
	}
}

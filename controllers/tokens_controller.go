package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"runwayplanner/backend/database"
)

func TokensUsage() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		u := database.GetTokenUsage(ctx, uid)
		c.JSON(http.StatusOK, usageJSON(u))
	}
}

func usageJSON(u database.TokenUsage) gin.H {
	return gin.H{
		"points":           u.Quota / 10000,
		"token_quota":      u.Quota,
		"token_used":       u.Used,
		"remaining":        u.Remaining(),
		"points_used":      u.Used / 10000,
		"points_remaining": u.Remaining() / 10000,
	}
}

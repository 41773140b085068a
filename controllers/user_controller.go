package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"runwayplanner/backend/database"
)

func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetInt64("user_id")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		u, err := database.GetUser(ctx, uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

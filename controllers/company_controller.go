package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"runwayplanner/backend/database"
	"runwayplanner/backend/models"
)

func CreateCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CompanyState
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		req.Currency = strings.ToUpper(req.Currency)
		if req.Currency == "" {
			req.Currency = "USD"
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, validationError(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		co, err := database.CreateCompany(ctx, c.GetInt64("user_id"), req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, co)
	}
}

func ListCompanies() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		list, err := database.ListCompanies(ctx, c.GetInt64("user_id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"companies": list})
	}
}

func GetCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		co, err := database.GetCompany(ctx, c.GetInt64("user_id"), id)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, co)
	}
}

package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phuslu/log"

	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/models"
	"runwayplanner/backend/utils"
)

func hash(pw string) string {
	h := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(h[:])
}

func Register(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if req.Password != req.Confirm {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password mismatch"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		id, err := database.CreateUser(ctx, req.Name, strings.ToLower(req.Email), hash(req.Password))
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			log.Error().Err(err).Msg("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, id, 24*time.Hour)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		u, err := database.GetUserByEmail(ctx, strings.ToLower(req.Email))
		if err != nil || u.PasswordHash != hash(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, _ := utils.GenerateJWT(cfg.JWTSecret, u.ID, 24*time.Hour)
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

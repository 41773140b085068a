package controllers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"runwayplanner/backend/database"
	"runwayplanner/backend/models"
	"runwayplanner/backend/spreadsheet"
)

const maxUploadBytes = 5 << 20

type hiringPlanBody struct {
	Items []models.HiringPlanItem `json:"items" validate:"dive"`
}

func PutHiringPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := idParam(c, "id")
		if !ok {
			return
		}
		var req hiringPlanBody
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, validationError(err))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := database.GetCompany(ctx, c.GetInt64("user_id"), companyID); err != nil {
			fail(c, err)
			return
		}
		if err := database.ReplaceHiringPlan(ctx, companyID, req.Items); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "count": len(req.Items)})
	}
}

func GetHiringPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := idParam(c, "id")
		if !ok {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if _, err := database.GetCompany(ctx, c.GetInt64("user_id"), companyID); err != nil {
			fail(c, err)
			return
		}
		items, err := database.ListHiringPlan(ctx, companyID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// ImportHiringPlan replaces the plan from an uploaded CSV/XLSX file. Month
// labels resolve against start_month, falling back to the latest assumption
// set. With dry_run=true nothing is stored.
func ImportHiringPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, ok := idParam(c, "id")
		if !ok {
			return
		}
		fh, err := c.FormFile("file")
		if err != nil {
			badRequest(c, "missing file")
			return
		}
		if fh.Size > maxUploadBytes {
			badRequest(c, "file too large")
			return
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		f, err := fh.Open()
		if err != nil {
			badRequest(c, "cannot open file")
			return
		}
		defer f.Close()
		content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			badRequest(c, "cannot read file")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := database.GetCompany(ctx, c.GetInt64("user_id"), companyID); err != nil {
			fail(c, err)
			return
		}
		start := c.PostForm("start_month")
		if start == "" {
			if set, err := database.LatestAssumptionSet(ctx, companyID); err == nil {
				start = set.StartMonth
			}
		}

		rows, err := spreadsheet.ReadRows(content, ext)
		if err != nil {
			badRequest(c, "cannot parse file: "+err.Error())
			return
		}
		imp, err := spreadsheet.ParseHiringPlan(rows, start)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		if msg := invalidItem(imp.Items); msg != "" {
			badRequest(c, msg)
			return
		}
		log.Info().Int64("company_id", companyID).Str("file", fh.Filename).
			Int("items", len(imp.Items)).Int("skipped", len(imp.Skipped)).Msg("hiring plan import")

		if c.PostForm("dry_run") != "true" {
			if err := database.ReplaceHiringPlan(ctx, companyID, imp.Items); err != nil {
				fail(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, imp)
	}
}

// invalidItem re-checks parsed rows against the same rules as JSON input.
// Empty when every item passes.
func invalidItem(items []models.HiringPlanItem) string {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return fmt.Sprintf("items[%d] %s", i, validationError(err))
		}
	}
	return ""
}

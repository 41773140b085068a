package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"runwayplanner/backend/config"
	"runwayplanner/backend/database"
	"runwayplanner/backend/spreadsheet"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportProjection streams a stored run as ?format=xlsx (default) or csv.
func ExportProjection(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		format := c.DefaultQuery("format", "xlsx")
		if format != "xlsx" && format != "csv" {
			badRequest(c, "format must be xlsx or csv")
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		run, err := database.GetRun(ctx, c.GetInt64("user_id"), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}

		filename := fmt.Sprintf("projection-%s.%s", run.ID, format)
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		if format == "csv" {
			c.Header("Content-Type", "text/csv")
			err = spreadsheet.WriteProjectionCSV(c.Writer, run.Projections)
		} else {
			c.Header("Content-Type", xlsxContentType)
			err = spreadsheet.WriteProjectionXLSX(c.Writer, run, cfg.ExportSheetName)
		}
		if err != nil {
			// headers may already be on the wire
			log.Error().Err(err).Str("run_id", run.ID).Str("format", format).Msg("export failed")
			c.Status(http.StatusInternalServerError)
		}
	}
}

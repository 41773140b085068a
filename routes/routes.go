package routes

import (
	"github.com/gin-gonic/gin"
	"runwayplanner/backend/config"
	"runwayplanner/backend/controllers"
	"runwayplanner/backend/middlewares"
)

func Register(r *gin.Engine, cfg config.Config) {
	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", controllers.Register(cfg))
		auth.POST("/login", controllers.Login(cfg))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("me", controllers.Me())
		// Companies and their stored inputs
		priv.POST("companies", controllers.CreateCompany())
		priv.GET("companies", controllers.ListCompanies())
		priv.GET("companies/:id", controllers.GetCompany())
		priv.POST("companies/:id/assumptions", controllers.CreateAssumptions(cfg))
		priv.GET("assumptions/:id", controllers.GetAssumptions())
		priv.PUT("companies/:id/hiring-plan", controllers.PutHiringPlan())
		priv.GET("companies/:id/hiring-plan", controllers.GetHiringPlan())
		// Upload a hiring plan as CSV/XLSX
		priv.POST("companies/:id/hiring-plan/import", controllers.ImportHiringPlan())
		// Projections: stored runs, inline previews and preset comparison
		priv.POST("projections/run", controllers.RunProjection(cfg))
		priv.POST("projections/preview", controllers.PreviewProjection(cfg))
		priv.POST("projections/compare", controllers.CompareScenarios(cfg))
		priv.GET("projections/:id", controllers.GetProjection())
		priv.GET("projections/:id/export", controllers.ExportProjection(cfg))
		priv.POST("projections/:id/advice", controllers.Advise(cfg))
		priv.GET("companies/:id/projections", controllers.ListProjections())
		// Assumption review
		priv.POST("sanity-check", controllers.SanityCheck())
		priv.GET("benchmarks/:stage", controllers.Benchmarks())
		priv.POST("break-even", controllers.BreakEven())
		// Token quotas
		priv.GET("tokens/usage", controllers.TokensUsage())
	}
}
